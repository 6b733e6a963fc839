package nizk

import (
	"encoding/json"

	"github.com/beleniosvote/core/group"
)

type scalarJSON struct {
	Scalar string `json:"scalar"`
}

func marshalScalar(s group.Scalar) json.RawMessage {
	b := s.Bytes()
	data, _ := json.Marshal(scalarJSON{Scalar: hexEncode(b[:])})
	return data
}

func unmarshalScalar(order *group.Scalar, data json.RawMessage) (group.Scalar, error) {
	var tmp scalarJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return group.Scalar{}, err
	}
	b, err := hexDecode(tmp.Scalar)
	if err != nil {
		return group.Scalar{}, err
	}
	return group.ScalarFromBytesModOrder(order.Order(), b), nil
}

type dlProofJSON struct {
	Challenge json.RawMessage `json:"challenge"`
	Response  json.RawMessage `json:"response"`
}

// MarshalJSON encodes a DLProof as hex-encoded challenge/response scalars.
func (p DLProof) MarshalJSON() ([]byte, error) {
	return json.Marshal(dlProofJSON{
		Challenge: marshalScalar(p.Challenge),
		Response:  marshalScalar(p.Response),
	})
}

// UnmarshalDLProofJSON decodes a DLProof bound to the scalar field that
// order belongs to (only order's Order is used).
func UnmarshalDLProofJSON(data []byte, order group.Scalar) (DLProof, error) {
	var tmp dlProofJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return DLProof{}, err
	}
	c, err := unmarshalScalar(&order, tmp.Challenge)
	if err != nil {
		return DLProof{}, err
	}
	s, err := unmarshalScalar(&order, tmp.Response)
	if err != nil {
		return DLProof{}, err
	}
	return DLProof{Challenge: c, Response: s}, nil
}

type proofPartJSON struct {
	Challenge json.RawMessage `json:"challenge"`
	Response  json.RawMessage `json:"response"`
}

// MarshalJSON encodes a SetMembershipProof as an ordered list of
// hex-encoded (challenge, response) scalar pairs.
func (p SetMembershipProof) MarshalJSON() ([]byte, error) {
	parts := make([]proofPartJSON, len(p))
	for i, part := range p {
		parts[i] = proofPartJSON{
			Challenge: marshalScalar(part.Challenge),
			Response:  marshalScalar(part.Response),
		}
	}
	return json.Marshal(parts)
}

// UnmarshalSetMembershipProofJSON decodes a SetMembershipProof bound to the
// scalar field that order belongs to (only order's Order is used).
func UnmarshalSetMembershipProofJSON(data []byte, order group.Scalar) (SetMembershipProof, error) {
	var parts []proofPartJSON
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, err
	}
	proof := make(SetMembershipProof, len(parts))
	for i, part := range parts {
		c, err := unmarshalScalar(&order, part.Challenge)
		if err != nil {
			return nil, err
		}
		s, err := unmarshalScalar(&order, part.Response)
		if err != nil {
			return nil, err
		}
		proof[i] = ProofPart{Challenge: c, Response: s}
	}
	return proof, nil
}
