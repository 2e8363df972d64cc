package change

// CreateView creates a view from its captured definition text.
type CreateView struct {
	ID         string
	Schema     string
	Name       string
	Definition string
}

func (c *CreateView) StableID() string    { return c.ID }
func (c *CreateView) Kind() Kind          { return KindView }
func (c *CreateView) Operation() Operation { return OpCreate }

// DropView drops a view.
type DropView struct {
	ID     string
	Schema string
	Name   string
}

func (d *DropView) StableID() string    { return d.ID }
func (d *DropView) Kind() Kind          { return KindView }
func (d *DropView) Operation() Operation { return OpDrop }

// ReplaceView replaces a view definition via CREATE OR REPLACE VIEW.
type ReplaceView struct {
	ID         string
	Schema     string
	Name       string
	Definition string
}

func (r *ReplaceView) StableID() string    { return r.ID }
func (r *ReplaceView) Kind() Kind          { return KindView }
func (r *ReplaceView) Operation() Operation { return OpReplace }
