package component

// JumpBudget counts the jumps an actor may still make before landing.
// 0 <= Remaining <= MaxJumps holds for every method.
type JumpBudget struct {
	MaxJumps  int
	Remaining int
}

// NewJumpBudget returns a full budget. Negative maxima are treated as zero.
func NewJumpBudget(maxJumps int) JumpBudget {
	if maxJumps < 0 {
		maxJumps = 0
	}
	return JumpBudget{MaxJumps: maxJumps, Remaining: maxJumps}
}

// Reset refills the budget.
func (j *JumpBudget) Reset() {
	if j.MaxJumps < 0 {
		j.MaxJumps = 0
	}
	j.Remaining = j.MaxJumps
}

// Consume spends one jump and reports whether one was available.
func (j *JumpBudget) Consume() bool {
	if j.Remaining <= 0 {
		j.Remaining = 0
		return false
	}
	if j.Remaining > j.MaxJumps {
		j.Remaining = j.MaxJumps
	}
	j.Remaining--
	return true
}

// Airborne reports whether at least one jump has been spent since the last
// reset.
func (j JumpBudget) Airborne() bool {
	return j.Remaining < j.MaxJumps
}

var JumpBudgetComponent = NewComponent[JumpBudget]()
