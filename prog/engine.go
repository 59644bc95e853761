package prog

// Apply runs one operation against the state. Addition wraps modulo 2^32;
// subtraction requires A >= B. On error the state is left unchanged.
func (s *CalcState) Apply(inst Instruction) error {
	switch inst.Op {
	case OpAdd:
		s.AddResult = inst.A + inst.B
	case OpSub:
		if inst.A < inst.B {
			return ErrSubtractionUnderflow
		}
		s.SubResult = inst.A - inst.B
	default:
		return ErrUnsupportedOperation
	}
	return nil
}
