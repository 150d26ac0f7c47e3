package group

import (
	"errors"
	"strconv"
	"strings"
)

// Path rebuilds the location of a parse failure from nested positional
// errors, outermost first: "balls[2]", "1.count", "points[0].1".
// It returns "" when err carries no position.
func Path(err error) string {
	var b strings.Builder

	for err != nil {
		switch e := err.(type) {
		case *RecordFieldError:
			dot(&b)
			b.WriteString(e.Field)
		case *TupleFieldError:
			dot(&b)
			b.WriteString(strconv.Itoa(e.Index))
		case *CollectionError:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(e.Index))
			b.WriteByte(']')
		case *CountError:
			dot(&b)
			b.WriteString("count")
		}
		err = errors.Unwrap(err)
	}

	return b.String()
}

func dot(b *strings.Builder) {
	if b.Len() > 0 {
		b.WriteByte('.')
	}
}
