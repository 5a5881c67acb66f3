// FILE: lixenwraith/joblog/format.go
package joblog

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// argDumper renders composite message arguments on a single line with stable map order
var argDumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// lineFormat holds the display settings a line is formatted with
type lineFormat struct {
	reportMemory bool
	reportDisk   bool
	diskPath     string
	sampler      UsageSampler
}

// formatLine turns a record into the line written to the sinks, without the trailing newline:
//
//	<timestamp> [<mem6> ][<disk6> ]<severity padding><text>
//
// It never fails; usage that cannot be sampled renders as blanks of the same width.
func formatLine(r logRecord, f lineFormat) string {
	var sb strings.Builder
	sb.Grow(len(r.timestamp) + 2*(usageFieldWidth+1) + severityWidth + len(r.text) + 1)

	sb.WriteString(r.timestamp)
	sb.WriteByte(' ')

	if f.reportMemory {
		sb.WriteString(usageField(f.sampler.MemoryUsageGB))
	}
	if f.reportDisk {
		sb.WriteString(usageField(func() (float64, error) {
			return f.sampler.DiskUsageGB(f.diskPath)
		}))
	}

	sb.WriteString(r.severity.padding())
	sb.WriteString(r.text)
	return sb.String()
}

// usageField renders one sample as a right-justified 6 character field plus a space
func usageField(sample func() (float64, error)) string {
	value, err := sample()
	if err != nil {
		return usageUnavailable + " "
	}
	return fmt.Sprintf("%*.1f ", usageFieldWidth, value)
}

// renderArgs joins message arguments with single spaces
func renderArgs(args []any) string {
	buf := make([]byte, 0, 64)
	for i, arg := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendValue(buf, arg)
	}
	return string(buf)
}

// appendValue converts any value to its message representation.
// Types without a direct conversion are delegated to spew.
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case int32:
		return strconv.AppendInt(buf, int64(val), 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case uint32:
		return strconv.AppendUint(buf, uint64(val), 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	case []byte:
		return hex.AppendEncode(buf, val)
	default:
		return append(buf, argDumper.Sprintf("%+v", val)...)
	}
}
