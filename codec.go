package gibberish

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

const tableMagic = "gibbertable!"

type tableFile struct {
	Order int      `msgpack:"order"`
	Grams []string `msgpack:"grams"`
}

// Grams returns the members of the set in sorted order.
func (ps PatternSet) Grams() []string {
	out := make([]string, 0, len(ps.grams))
	for g := range ps.grams {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

func (ps PatternSet) MarshalBinary() (data []byte, err error) {
	body, err := msgpack.Marshal(tableFile{Order: ps.order, Grams: ps.Grams()})
	if err != nil {
		return nil, fmt.Errorf("gibberish: encode table: %w", err)
	}
	var buf bytes.Buffer
	buf.Grow(len(tableMagic) + len(body))
	buf.WriteString(tableMagic)
	buf.Write(body)
	return buf.Bytes(), nil
}

func (ps *PatternSet) UnmarshalBinary(data []byte) (err error) {
	if !bytes.HasPrefix(data, []byte(tableMagic)) {
		return fmt.Errorf("gibberish: table does not start with %q", tableMagic)
	}
	var tf tableFile
	if err := msgpack.Unmarshal(data[len(tableMagic):], &tf); err != nil {
		return fmt.Errorf("gibberish: decode table: %w", err)
	}
	if tf.Order <= 0 {
		return fmt.Errorf("gibberish: table has invalid order %d", tf.Order)
	}
	for _, g := range tf.Grams {
		if len(g) != tf.Order {
			return fmt.Errorf("gibberish: table entry %q does not match order %d", g, tf.Order)
		}
	}
	*ps = NewPatternSet(tf.Order, tf.Grams...)
	return nil
}
