package jsond

import (
	"log/slog"
	"strconv"

	"github.com/signadot/jsond/ir"
)

func GetLong(n *ir.Node) (int64, error) {
	v, err := n.AsInt64()
	return v, convFailed(n, err)
}

func GetDouble(n *ir.Node) (float64, error) {
	v, err := n.AsFloat64()
	return v, convFailed(n, err)
}

func GetBool(n *ir.Node) (bool, error) {
	v, err := n.AsBool()
	return v, convFailed(n, err)
}

// GetString returns the decoded text of a string, or the literal of
// another scalar.
func GetString(n *ir.Node) (string, error) {
	v, err := n.AsString()
	return v, convFailed(n, err)
}

func GetNull(n *ir.Node) (bool, error) {
	v, err := n.IsNull()
	return v, convFailed(n, err)
}

func convFailed(n *ir.Node, err error) error {
	if err == nil {
		return nil
	}
	at := ""
	if n != nil {
		at = n.Path()
	}
	log().Debug("conversion failed", slog.String("at", at), slog.Any("error", err))
	return err
}

// LongToString formats v in decimal.
func LongToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

// DoubleToString formats v with six digits after the decimal point.
func DoubleToString(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
