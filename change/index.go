package change

// CreateIndex creates an index using its captured definition text.
type CreateIndex struct {
	ID         string
	Schema     string
	Table      string
	Name       string
	Definition string
}

func (c *CreateIndex) StableID() string    { return c.ID }
func (c *CreateIndex) Kind() Kind          { return KindIndex }
func (c *CreateIndex) Operation() Operation { return OpCreate }

// DropIndex drops an index.
type DropIndex struct {
	ID     string
	Schema string
	Table  string
	Name   string
}

func (d *DropIndex) StableID() string    { return d.ID }
func (d *DropIndex) Kind() Kind          { return KindIndex }
func (d *DropIndex) Operation() Operation { return OpDrop }
