package transaction

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Group is one category with its transactions in index order
type Group struct {
	Category     string
	Transactions []Transaction
}

// Book maps categories to their transactions and remembers the order in
// which categories were first added. The zero value is not usable; call NewBook.
type Book struct {
	order  []string
	groups map[string][]Transaction
}

// NewBook returns an empty book
func NewBook() *Book {
	return &Book{groups: make(map[string][]Transaction)}
}

// Len returns the number of categories
func (b *Book) Len() int {
	return len(b.order)
}

// Count returns the number of transactions across all categories
func (b *Book) Count() int {
	n := 0
	for _, c := range b.order {
		n += len(b.groups[c])
	}
	return n
}

// Has reports whether the category exists, even if it holds no transactions
func (b *Book) Has(category string) bool {
	_, ok := b.groups[category]
	return ok
}

// Categories returns category names in insertion order
func (b *Book) Categories() []string {
	return append([]string(nil), b.order...)
}

// Transactions returns a copy of the category's transactions
func (b *Book) Transactions(category string) ([]Transaction, bool) {
	list, ok := b.groups[category]
	if !ok {
		return nil, false
	}
	return append([]Transaction{}, list...), true
}

// Append adds a transaction to the end of a category, creating it if needed
func (b *Book) Append(category string, t Transaction) {
	if _, ok := b.groups[category]; !ok {
		b.order = append(b.order, category)
	}
	b.groups[category] = append(b.groups[category], t)
}

// Set replaces the transaction at zero-based index i
func (b *Book) Set(category string, i int, t Transaction) bool {
	list, ok := b.groups[category]
	if !ok || i < 0 || i >= len(list) {
		return false
	}
	list[i] = t
	return true
}

// RemoveAt deletes the transaction at zero-based index i, shifting later ones down
func (b *Book) RemoveAt(category string, i int) bool {
	list, ok := b.groups[category]
	if !ok || i < 0 || i >= len(list) {
		return false
	}
	b.groups[category] = append(list[:i], list[i+1:]...)
	return true
}

// Remove drops a category and all of its transactions
func (b *Book) Remove(category string) bool {
	if _, ok := b.groups[category]; !ok {
		return false
	}
	delete(b.groups, category)
	for i, c := range b.order {
		if c == category {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Groups returns a deep copy of the book in category order
func (b *Book) Groups() []Group {
	out := make([]Group, 0, len(b.order))
	for _, c := range b.order {
		out = append(out, Group{
			Category:     c,
			Transactions: append([]Transaction{}, b.groups[c]...),
		})
	}
	return out
}

// Clone returns an independent copy
func (b *Book) Clone() *Book {
	c := NewBook()
	for _, g := range b.Groups() {
		c.order = append(c.order, g.Category)
		c.groups[g.Category] = g.Transactions
	}
	return c
}

func (b *Book) put(category string, list []Transaction) {
	if _, ok := b.groups[category]; !ok {
		b.order = append(b.order, category)
	}
	if list == nil {
		list = []Transaction{}
	}
	b.groups[category] = list
}

// MarshalJSON writes the book as a JSON object keyed by category, keeping
// category order.
func (b *Book) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range b.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		list := b.groups[c]
		if list == nil {
			list = []Transaction{}
		}
		val, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", c, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keyed by category. Key order in the
// document becomes category order; a repeated key keeps its first position
// and its last value.
func (b *Book) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	fresh := NewBook()
	if tok == nil {
		*b = *fresh
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object of categories, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected category name, got %v", tok)
		}
		var list []Transaction
		if err := dec.Decode(&list); err != nil {
			return fmt.Errorf("category %q: %w", category, err)
		}
		fresh.put(category, list)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*b = *fresh
	return nil
}
