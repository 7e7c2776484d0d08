package arch

import "testing"

const sampleFabric = `
// two memory columns behind a frame decoder
module mem2 {
  bits "10"
}

module dec2 {
  port address width 1
}

module clb {
  child mem2
  child mem2
  child dec2
}

module iob {
  bits 3
}

module fpga_top {
  child clb
  child iob as north_bank
}

top fpga_top
`

func TestParseFabricDescription(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser returned error: %v", err)
	}

	file, err := parser.ParseString(sampleFabric)
	if err != nil {
		t.Fatalf("ParseString returned error: %v", err)
	}

	var modules []*ModuleDecl
	var top *TopDecl
	for _, decl := range file.Decls {
		if decl.Module != nil {
			modules = append(modules, decl.Module)
		}
		if decl.Top != nil {
			top = decl.Top
		}
	}

	if len(modules) != 5 {
		t.Fatalf("parsed %d modules, want 5", len(modules))
	}
	if top == nil || top.Name != "fpga_top" {
		t.Fatalf("top = %+v, want fpga_top", top)
	}

	mem2 := modules[0]
	if mem2.Name != "mem2" || len(mem2.Items) != 1 || mem2.Items[0].Bits == nil {
		t.Fatalf("mem2 parsed as %+v", mem2)
	}
	if mem2.Items[0].Bits.Values == nil || *mem2.Items[0].Bits.Values != `"10"` {
		t.Fatalf("mem2 bits = %+v, want literal \"10\"", mem2.Items[0].Bits)
	}

	dec2 := modules[1]
	if dec2.Items[0].Port == nil || dec2.Items[0].Port.Name != "address" || dec2.Items[0].Port.Width != 1 {
		t.Fatalf("dec2 port parsed as %+v", dec2.Items[0].Port)
	}

	clb := modules[2]
	if len(clb.Items) != 3 {
		t.Fatalf("clb has %d items, want 3", len(clb.Items))
	}
	for i, want := range []string{"mem2", "mem2", "dec2"} {
		child := clb.Items[i].Child
		if child == nil || child.Module != want {
			t.Fatalf("clb child %d = %+v, want %s", i, child, want)
		}
	}

	iob := modules[3]
	if iob.Items[0].Bits == nil || iob.Items[0].Bits.Count == nil || *iob.Items[0].Bits.Count != 3 {
		t.Fatalf("iob bits parsed as %+v", iob.Items[0].Bits)
	}

	topMod := modules[4]
	if topMod.Items[1].Child == nil || topMod.Items[1].Child.As != "north_bank" {
		t.Fatalf("fpga_top named child parsed as %+v", topMod.Items[1].Child)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser returned error: %v", err)
	}

	cases := []string{
		`module {`,
		`module m { child }`,
		`module m { port address }`,
		`module m { bits "102" }`,
		`top`,
	}
	for _, input := range cases {
		if _, err := parser.ParseString(input); err == nil {
			t.Fatalf("ParseString(%q) returned no error", input)
		}
	}
}
