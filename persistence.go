package localemerge

import (
	"github.com/menuboard/localemerge/pkg/reconcile"
	"github.com/menuboard/localemerge/pkg/report"
	"github.com/menuboard/localemerge/pkg/save"
	"github.com/menuboard/localemerge/pkg/tree"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence writes merge outputs.
type Persistence interface {
	// Save writes a tree in canonical form
	Save(n tree.Node, opts ...save.Option) error

	// SaveReport renders a changeset and writes it
	SaveReport(changes *reconcile.Changeset, format report.Format, opts ...save.Option) error
}

// Save writes n using the save options. JSON is the default format.
func (c *client) Save(n tree.Node, opts ...save.Option) error {
	return save.Tree(n, opts...)
}

// SaveReport renders changes in format and writes the result using the
// destination from opts. The save format option is ignored.
func (c *client) SaveReport(changes *reconcile.Changeset, format report.Format, opts ...save.Option) error {
	data, err := report.Render(changes, format)
	if err != nil {
		return err
	}
	return save.Write(data, opts...)
}
