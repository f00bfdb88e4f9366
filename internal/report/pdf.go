package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"evalhub/internal/directory"
	"evalhub/internal/record"
)

// WriteDepartmentPDF renders the department rollup to a PDF under dir and
// returns the file path.
func WriteDepartmentPDF(dir string, dept directory.Department, averages []record.CompetencyAverage, recordCount int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("rollup-%s-%d.pdf", dept.ID, time.Now().Unix()))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Department Evaluation Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", dept.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Records: %d", recordCount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(90, 8, "Competency")
	pdf.Cell(40, 8, "Average")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, avg := range averages {
		pdf.Cell(90, 8, avg.Competency)
		pdf.Cell(40, 8, fmt.Sprintf("%.2f", avg.Average))
		pdf.Ln(7)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
