package csvcodec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joistcore/punchplan/internal/common"
)

// ErrMalformedRecord is returned by Parse for input that doesn't start
// with the mandatory csvCOMPONENT prefix or is missing required fields.
var ErrMalformedRecord = fmt.Errorf("csvcodec: malformed record")

const minFields = 12

// Parse decodes a record produced by Encode back into its punch list and
// Meta. It is a supplemented capability (spec.md does not define a
// decoder) used to exercise P5 round-trip testing: CornerBrackets is
// unrecoverable from the wire form and always decodes as Service
// (spec.md §8 P5).
func Parse(record string) ([]common.Punch, Meta, error) {
	fields := strings.Split(strings.TrimSpace(record), ",")
	if len(fields) < minFields || fields[0] != header {
		return nil, Meta{}, ErrMalformedRecord
	}

	meta := Meta{PartCode: fields[2]}
	if fields[3] == "BEARER" {
		meta.Variant = common.BearerSingle
	} else {
		meta.Variant = common.JoistSingle
	}

	qty, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, Meta{}, fmt.Errorf("%w: qty field %q: %v", ErrMalformedRecord, fields[5], err)
	}
	meta.Qty = qty

	tail := fields[minFields:]
	if len(tail)%2 != 0 {
		return nil, Meta{}, fmt.Errorf("%w: trailing station/position fields not paired", ErrMalformedRecord)
	}

	punches := make([]common.Punch, 0, len(tail)/2)
	for i := 0; i < len(tail); i += 2 {
		station, posField := tail[i], tail[i+1]
		kind, ok := common.KindForStation(station)
		if !ok {
			return nil, Meta{}, fmt.Errorf("%w: unknown station %q", ErrMalformedRecord, station)
		}
		pos, err := strconv.ParseFloat(posField, 64)
		if err != nil {
			return nil, Meta{}, fmt.Errorf("%w: position field %q: %v", ErrMalformedRecord, posField, err)
		}
		punches = append(punches, common.Punch{PositionMM: common.RoundHalf(pos), Kind: kind, Active: true})
	}

	return punches, meta, nil
}
