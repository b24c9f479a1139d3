package core

// Step records one decision of a policy.
type Step struct {
	Time    int
	Arm     int
	Reward  float64
	Explore bool
}

type Trace struct {
	steps []*Step
}

func NewTrace() *Trace {
	return &Trace{
		steps: make([]*Step, 0),
	}
}

func (t *Trace) AddStep(s *Step) {
	t.steps = append(t.steps, s)
}

func (t *Trace) Step(i int) *Step {
	return t.steps[i]
}

func (t *Trace) Len() int {
	return len(t.steps)
}

func (t *Trace) Last() *Step {
	if len(t.steps) == 0 {
		return nil
	}
	return t.steps[len(t.steps)-1]
}

// Actions returns the arm chosen at every step, in order.
func (t *Trace) Actions() []int {
	out := make([]int, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Arm
	}
	return out
}

// Explorations counts the steps where the arm was chosen at random.
func (t *Trace) Explorations() int {
	count := 0
	for _, s := range t.steps {
		if s.Explore {
			count++
		}
	}
	return count
}
