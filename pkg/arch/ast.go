package arch

// File represents a complete fabric description: a list of module
// declarations plus a single top declaration naming the hierarchy root.
type File struct {
	Decls []*Decl `parser:"@@*"`
}

// Decl is one top-level declaration.
type Decl struct {
	Module *ModuleDecl `parser:"  @@"`
	Top    *TopDecl    `parser:"| @@"`
}

// ModuleDecl declares a module and its contents.
// Example: module clb { child mem4 child mem4 child dec2 }
type ModuleDecl struct {
	Name  string        `parser:"KwModule @Ident LBrace"`
	Items []*ModuleItem `parser:"@@* RBrace"`
}

// ModuleItem is one declaration inside a module body.
type ModuleItem struct {
	Port  *PortDecl  `parser:"  @@"`
	Child *ChildDecl `parser:"| @@"`
	Bits  *BitsDecl  `parser:"| @@"`
}

// PortDecl declares a named port of a fixed bit width.
// Example: port address width 2
type PortDecl struct {
	Name  string `parser:"KwPort @Ident"`
	Width int    `parser:"KwWidth @Integer"`
}

// ChildDecl appends one configurable child instance, optionally under an
// explicit instance name.
// Example: child mem4 as left
type ChildDecl struct {
	Module string `parser:"KwChild @Ident"`
	As     string `parser:"( KwAs @Ident )?"`
}

// BitsDecl declares the configuration bits of a leaf module, either with
// explicit values ("1011") or as a zero-initialized count.
type BitsDecl struct {
	Values *string `parser:"KwBits ( @BinaryLit"`
	Count  *int    `parser:"| @Integer )"`
}

// TopDecl names the module at the root of the hierarchy.
type TopDecl struct {
	Name string `parser:"KwTop @Ident"`
}
