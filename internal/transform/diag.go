package transform

import "fmt"

// Code identifies a class of generation diagnostic.
type Code string

// InvalidUnderlyingType is recorded when an enum declaration names an
// underlying type outside the supported set. Args: type name, enum name.
const InvalidUnderlyingType Code = "InvalidUnderlyingType"

// Diag is a non-fatal generation problem. The pipeline keeps going after
// recording one so a single run surfaces every problem in the
// declaration set instead of stopping at the first.
type Diag struct {
	Code Code
	Args []string
}

func (d Diag) String() string {
	switch d.Code {
	case InvalidUnderlyingType:
		return fmt.Sprintf("unsupported underlying type %q on enum %q", d.Args[0], d.Args[1])
	default:
		return fmt.Sprintf("%s %v", d.Code, d.Args)
	}
}

// Diags accumulates diagnostics across a generation run.
type Diags struct {
	list []Diag
}

func (d *Diags) Add(code Code, args ...string) {
	d.list = append(d.list, Diag{Code: code, Args: args})
}

// All returns the recorded diagnostics in recording order.
func (d *Diags) All() []Diag { return d.list }

func (d *Diags) Len() int { return len(d.list) }
