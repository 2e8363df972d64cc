package change

// CreateFunction creates a function from its captured definition text.
type CreateFunction struct {
	ID         string
	Schema     string
	Name       string
	Definition string
}

func (c *CreateFunction) StableID() string    { return c.ID }
func (c *CreateFunction) Kind() Kind          { return KindFunction }
func (c *CreateFunction) Operation() Operation { return OpCreate }

// DropFunction drops a function, identified by its full signature.
type DropFunction struct {
	ID             string
	Schema         string
	Name           string
	ArgTypesSuffix string
}

func (d *DropFunction) StableID() string    { return d.ID }
func (d *DropFunction) Kind() Kind          { return KindFunction }
func (d *DropFunction) Operation() Operation { return OpDrop }

// ReplaceFunction replaces a function body via CREATE OR REPLACE FUNCTION.
type ReplaceFunction struct {
	ID         string
	Schema     string
	Name       string
	Definition string
}

func (r *ReplaceFunction) StableID() string    { return r.ID }
func (r *ReplaceFunction) Kind() Kind          { return KindFunction }
func (r *ReplaceFunction) Operation() Operation { return OpReplace }

// CreateProcedure creates a procedure from its captured definition text.
type CreateProcedure struct {
	ID         string
	Schema     string
	Name       string
	Definition string
}

func (c *CreateProcedure) StableID() string    { return c.ID }
func (c *CreateProcedure) Kind() Kind          { return KindProcedure }
func (c *CreateProcedure) Operation() Operation { return OpCreate }

// DropProcedure drops a procedure, identified by its full signature.
type DropProcedure struct {
	ID             string
	Schema         string
	Name           string
	ArgTypesSuffix string
}

func (d *DropProcedure) StableID() string    { return d.ID }
func (d *DropProcedure) Kind() Kind          { return KindProcedure }
func (d *DropProcedure) Operation() Operation { return OpDrop }

// ReplaceProcedure replaces a procedure body via CREATE OR REPLACE PROCEDURE.
type ReplaceProcedure struct {
	ID         string
	Schema     string
	Name       string
	Definition string
}

func (r *ReplaceProcedure) StableID() string    { return r.ID }
func (r *ReplaceProcedure) Kind() Kind          { return KindProcedure }
func (r *ReplaceProcedure) Operation() Operation { return OpReplace }
