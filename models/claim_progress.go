package models

// ClaimStage is one step of the disbursement pipeline. Date is nil until the
// stage is first completed.
type ClaimStage struct {
	Name      string  `json:"name"`
	Completed bool    `json:"completed"`
	Date      *string `json:"date"`
}

// ClaimProgress tracks a package's position in the five-step disbursement
// pipeline. One row per package.
type ClaimProgress struct {
	PackageID    int          `gorm:"primaryKey" json:"package_id"`
	PackageName  string       `gorm:"size:160" json:"package_name"`
	CurrentStage int          `json:"current_stage"`
	Stages       []ClaimStage `gorm:"serializer:json" json:"stages"`
}

func (ClaimProgress) TableName() string {
	return "claim_progress"
}

// AdvanceTo moves the tracker to stage and re-derives every stage's
// completion. Stages at or below the new position are completed; a stage
// that already carries a completion date keeps it, so repeating a call or
// lowering and re-raising the stage never rewrites recorded history. Stages
// beyond the new position are reset and their dates cleared.
func (p *ClaimProgress) AdvanceTo(stage int, today string) {
	p.CurrentStage = stage
	for i := range p.Stages {
		if i <= stage {
			p.Stages[i].Completed = true
			if p.Stages[i].Date == nil {
				d := today
				p.Stages[i].Date = &d
			}
		} else {
			p.Stages[i].Completed = false
			p.Stages[i].Date = nil
		}
	}
}
