package decode

import (
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/custodia-labs/needle-cli/internal/core/domain"
	"github.com/custodia-labs/needle-cli/internal/core/ports/driven"
)

// Ensure JSON implements the interface.
var _ driven.DocumentDecoder = JSON{}

// JSON decodes JSON documents via ojg. The tree is built from the
// token stream rather than oj.Parse's maps so that object fields keep
// their document order.
type JSON struct{}

// Extensions implements DocumentDecoder.
func (JSON) Extensions() []string {
	return []string{".json"}
}

// Decode implements DocumentDecoder.
func (JSON) Decode(data []byte) (domain.Value, error) {
	b := &jsonBuilder{}
	if err := oj.Tokenize(data, b); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	if b.root == nil {
		return domain.Object{}, nil
	}
	return b.root, nil
}

// jsonFrame is one open container during tokenization.
type jsonFrame struct {
	fields []domain.Field
	items  []domain.Value
	isObj  bool
	key    string
}

// jsonBuilder implements oj.TokenHandler, assembling a Value tree in
// token order.
type jsonBuilder struct {
	stack []*jsonFrame
	root  domain.Value
}

// emit places a completed value into the enclosing container, or
// records it as the root.
func (b *jsonBuilder) emit(v domain.Value) {
	if len(b.stack) == 0 {
		b.root = v
		return
	}
	top := b.stack[len(b.stack)-1]
	if top.isObj {
		top.fields = append(top.fields, domain.Field{Name: top.key, Child: v})
	} else {
		top.items = append(top.items, v)
	}
}

func (b *jsonBuilder) Null() { b.emit(domain.Scalar{Val: nil}) }

func (b *jsonBuilder) Bool(v bool) { b.emit(domain.Scalar{Val: v}) }

func (b *jsonBuilder) Int(v int64) { b.emit(domain.Scalar{Val: v}) }

func (b *jsonBuilder) Float(v float64) { b.emit(domain.Scalar{Val: v}) }

func (b *jsonBuilder) String(v string) { b.emit(domain.Scalar{Val: v}) }

// Number receives numbers too large for int64/float64; they stay
// opaque scalars.
func (b *jsonBuilder) Number(num string) { b.emit(domain.Scalar{Val: num}) }

func (b *jsonBuilder) Key(k string) {
	b.stack[len(b.stack)-1].key = k
}

func (b *jsonBuilder) ObjectStart() {
	b.stack = append(b.stack, &jsonFrame{isObj: true})
}

func (b *jsonBuilder) ObjectEnd() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.emit(domain.Object{Fields: top.fields})
}

func (b *jsonBuilder) ArrayStart() {
	b.stack = append(b.stack, &jsonFrame{})
}

func (b *jsonBuilder) ArrayEnd() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.emit(domain.Sequence{Items: top.items})
}
