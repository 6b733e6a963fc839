package group

import "encoding/json"

// pointJSON is the wire representation of a group element: hex-encoded
// canonical bytes. Using the element's own canonical encoding (rather than
// reconstructing affine coordinates) keeps this representation valid across
// backends with different point sizes, unlike a fixed-width (X,Y) pair.
type pointJSON struct {
	Point string `json:"point"`
}

func marshalElementJSON(e Element) ([]byte, error) {
	b, err := e.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(pointJSON{Point: hexEncode(b)})
}

func unmarshalElementJSON(data []byte, e Element) error {
	var p pointJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	b, err := hexDecode(p.Point)
	if err != nil {
		return err
	}
	return e.UnmarshalBinary(b)
}
