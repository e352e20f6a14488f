package isa

// Comment is a free name/value annotation that can be attached to any entity.
// Name is required; Value may be text, a number, or absent.
type Comment struct {
	name  NonEmpty
	value Value
}

// NewComment validates name and value.
func NewComment(name string, value any) (Comment, error) {
	var c Comment
	if err := c.SetName(name); err != nil {
		return Comment{}, err
	}
	if err := c.SetValue(value); err != nil {
		return Comment{}, err
	}
	return c, nil
}

func (c Comment) Name() string { return c.name.String() }

// Value returns the comment value; empty text reads back as absent.
func (c Comment) Value() Value {
	if c.value.IsZero() {
		return Value{}
	}
	return c.value
}

func (c *Comment) SetName(name string) error {
	n, err := NewNonEmpty(name)
	if err != nil {
		return emptyError("Comment", "name")
	}
	c.name = n
	return nil
}

func (c *Comment) SetValue(value any) error {
	v, err := accepts("Comment", "value", value, ValueText, ValueNumber)
	if err != nil {
		return err
	}
	c.value = v
	return nil
}

// Equal reports field equality.
func (c Comment) Equal(o Comment) bool {
	return c.name == o.name && c.Value().Equal(o.Value())
}

// Commentable is embedded by every entity that carries comments.
type Commentable struct {
	Comments []Comment
}

// AddComment appends a validated comment.
func (c *Commentable) AddComment(name string, value any) error {
	cm, err := NewComment(name, value)
	if err != nil {
		return err
	}
	c.Comments = append(c.Comments, cm)
	return nil
}

// Comment returns the first comment with the given name.
func (c *Commentable) Comment(name string) (Comment, bool) {
	for _, cm := range c.Comments {
		if cm.Name() == name {
			return cm, true
		}
	}
	return Comment{}, false
}

func setComments(entity string, dst *[]Comment, v any) error {
	switch x := v.(type) {
	case nil:
		*dst = nil
	case []Comment:
		*dst = x
	default:
		return typeError(entity, "comments", v, "[]Comment", "nil")
	}
	return nil
}
