package scaffold

// ConfirmFunc is called to decide whether the license is copied. Returns true
// to copy it.
type ConfirmFunc func() (bool, error)

// Always returns a ConfirmFunc with a fixed answer.
func Always(answer bool) ConfirmFunc {
	return func() (bool, error) { return answer, nil }
}
