package ballot

import "errors"

// Error kinds from spec §7 that concern a single ballot. Verify returns
// ErrBallotVerification; ErrCredentialNotFound and ErrCredentialUsedTwice
// are returned by the Voting Server's VerifyBallot in package participants.
var (
	ErrBallotVerification  = errors.New("ballot: proof verification failed")
	ErrCredentialNotFound  = errors.New("ballot: credential not found in voter list")
	ErrCredentialUsedTwice = errors.New("ballot: credential already used")
)
