package participants

import "fmt"

// IncorrectLenError signals two lists that should have matched lengths
// didn't (spec §7), e.g. the roster and the weight vector. This
// implementation's construction makes the scenario unreachable in
// practice (the lengths are derived from the same slice at every step),
// but the type is kept as the checked boundary a transport layer
// deserializing untrusted E1/E7 messages would need.
type IncorrectLenError struct {
	Want, Got int
}

func (e *IncorrectLenError) Error() string {
	return fmt.Sprintf("participants: expected length %d, got %d", e.Want, e.Got)
}

// DifferentMultisetError signals the Voting Server's cross-check at E8
// found the weight multiset CA echoed back does not match the one VS
// sent at E3 (spec §4.7 step E8).
type DifferentMultisetError struct{}

func (e *DifferentMultisetError) Error() string {
	return "participants: voter weight multiset disagreement between VS and CA"
}

// TrusteePKProofFailedError names the trustee indices (1-based, matching
// spec notation) whose E9 discrete-log proof failed to verify.
type TrusteePKProofFailedError struct {
	Indices []int
}

func (e *TrusteePKProofFailedError) Error() string {
	return fmt.Sprintf("participants: trustee public key proof failed for trustees %v", e.Indices)
}

// DisagreementOverLError signals CA's E12 recheck found the list L it
// receives back from VS does not match the L it generated at E7.
type DisagreementOverLError struct{}

func (e *DisagreementOverLError) Error() string {
	return "participants: credential authority and voting server disagree on L"
}
