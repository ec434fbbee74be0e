package blocks

// Block is one node of the visual-block representation. Top-level
// blocks carry a placement hint; nested blocks hang off value sockets,
// statement sockets, or the next-statement link.
type Block struct {
	Type       string
	ID         string
	X, Y       int  // placement hint, top-level blocks only
	TopLevel   bool // placement is emitted only when set
	Mutation   *Mutation
	Fields     []Field
	Values     []ValueSocket
	Statements []StatementSocket
	Next       *Block
}

// Mutation mirrors the target's mutation element; unused attributes
// stay empty and are omitted from the document.
type Mutation struct {
	ComponentType string
	SetOrGet      string
	PropertyName  string
	IsGeneric     string
	InstanceName  string
	EventName     string
	Items         string
}

// Field is a literal field of a block
type Field struct {
	Name  string
	Value string
}

// ValueSocket is a filled typed argument slot
type ValueSocket struct {
	Name  string
	Block *Block
}

// StatementSocket holds the first statement of a nested sequence
type StatementSocket struct {
	Name  string
	Block *Block
}

// Value returns the block plugged into the named value socket, or nil.
func (b *Block) Value(name string) *Block {
	for _, v := range b.Values {
		if v.Name == name {
			return v.Block
		}
	}
	return nil
}

// Statement returns the first block of the named statement socket.
func (b *Block) Statement(name string) *Block {
	for _, s := range b.Statements {
		if s.Name == name {
			return s.Block
		}
	}
	return nil
}

// Field value lookup for tests and rendering.
func (b *Block) FieldValue(name string) string {
	for _, f := range b.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}
