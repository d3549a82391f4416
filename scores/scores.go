package scores

// Side names a player by the half of the field they defend
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// Opponent is the other side
func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

// Direction is the x sign pointing at this side's half of the field
func (s Side) Direction() float64 {
	if s == Left {
		return -1
	}
	return 1
}

type Scores struct {
	LeftScores  int
	RightScores int
}

// Add credits a point to the scorer
func (s *Scores) Add(scorer Side) {
	switch scorer {
	case Left:
		s.LeftScores++
	case Right:
		s.RightScores++
	}
}

// Reset clears the tally. Only an explicit player action should call it.
func (s *Scores) Reset() {
	*s = Scores{}
}
