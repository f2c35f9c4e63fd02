package calculator

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"adder/internal/calculation"
)

var errMissingSign = errors.New("sign is required")

// Number is a result value. Finite values encode as JSON numbers; +Inf, -Inf
// and NaN, which JSON cannot represent, encode as the strings "+Inf", "-Inf"
// and "NaN".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*n = Number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// CalculationView is the JSON shape of the stored calculation.
type CalculationView struct {
	Left   float64          `json:"left"`
	Right  float64          `json:"right"`
	Sign   calculation.Sign `json:"sign"`
	Result Number           `json:"result"`
}

func newCalculationView(s calculation.State) CalculationView {
	return CalculationView{
		Left:   s.Left,
		Right:  s.Right,
		Sign:   s.Sign,
		Result: Number(s.Result()),
	}
}

// SignOption is one entry of the selectable sign row.
type SignOption struct {
	Sign      calculation.Sign `json:"sign"`
	Operation string           `json:"operation"`
	Selected  bool             `json:"selected"`
}

// SetSignRequest is the body of PUT /calculation/sign. Both a bare sign
// ("x") and a wrapped one ({"sign": "x"}) are accepted.
type SetSignRequest struct {
	Sign calculation.Sign
}

func (p *SetSignRequest) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &p.Sign)
	}

	var wrapped struct {
		Sign *calculation.Sign `json:"sign"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Sign == nil {
		return errMissingSign
	}
	p.Sign = *wrapped.Sign
	return nil
}

// ComputeRequest is the JSON body for POST /calculator/compute.
type ComputeRequest struct {
	Left  float64           `json:"left"`
	Right float64           `json:"right"`
	Sign  *calculation.Sign `json:"sign"`
}

// CalcRequest is the JSON body for the fixed-sign operations (add, subtract, multiply, divide).
type CalcRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// CalcResponse is the JSON response for the stateless calculator endpoints.
type CalcResponse struct {
	Operation string           `json:"operation"`
	Sign      calculation.Sign `json:"sign"`
	A         float64          `json:"a"`
	B         float64          `json:"b"`
	Result    Number           `json:"result"`
}

// ChainStep describes a single step in a chained calculation.
type ChainStep struct {
	Sign  *calculation.Sign `json:"sign"`
	Value float64           `json:"value"` // right operand; the running total is the left one
}

// ChainRequest is the JSON body for POST /calculator/chain.
type ChainRequest struct {
	Initial float64     `json:"initial"`
	Steps   []ChainStep `json:"steps"`
}

// ChainResponse is the JSON response for POST /calculator/chain.
type ChainResponse struct {
	Initial float64       `json:"initial"`
	Steps   []ChainResult `json:"steps"`
	Result  Number        `json:"result"`
}

// ChainResult records one executed step.
type ChainResult struct {
	Sign   calculation.Sign `json:"sign"`
	Value  float64          `json:"value"`
	Result Number           `json:"result"`
}
