package evaluation

const (
	TypeSelf    = "self"
	TypePeer    = "peer"
	TypeManager = "manager"
)

const (
	CompetencyCommunication  = "COMMUNICATION"
	CompetencyTeamwork       = "TEAMWORK"
	CompetencyLeadership     = "LEADERSHIP"
	CompetencyTechnicalSkill = "TECHNICAL_SKILL"
	CompetencyAdaptability   = "ADAPTABILITY"
)

var Categories = []string{
	CompetencyCommunication,
	CompetencyTeamwork,
	CompetencyLeadership,
	CompetencyTechnicalSkill,
	CompetencyAdaptability,
}

func ValidType(evaluationType string) bool {
	switch evaluationType {
	case TypeSelf, TypePeer, TypeManager:
		return true
	}
	return false
}

func ValidCategory(name string) bool {
	for _, category := range Categories {
		if category == name {
			return true
		}
	}
	return false
}
