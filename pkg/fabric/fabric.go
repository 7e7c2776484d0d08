// Package fabric models the physical module hierarchy of an FPGA fabric:
// modules, their named ports, and the ordered list of configurable child
// instances that determines the physical loading order of configuration
// memories.
package fabric

import "fmt"

// ModuleId identifies a module within a ModuleManager.
type ModuleId int

// PortId identifies a module port within a ModuleManager.
type PortId int

// InvalidModule marks the absence of a module.
const InvalidModule ModuleId = -1

// DecoderAddressPort is the reserved port name carried by frame decoder
// modules; its width decides how many address bits a hierarchy level
// contributes.
const DecoderAddressPort = "address"

// ConfigurableChild is one entry in a module's ordered list of configurable
// children: a child module plus its instance index within the parent.
type ConfigurableChild struct {
	Module   ModuleId
	Instance int
}

type port struct {
	name  string
	width int
}

type childEntry struct {
	module   ModuleId
	instance int
	name     string
}

type module struct {
	name     string
	ports    []PortId
	children []childEntry
}

// ModuleManager is an arena-backed store of modules and ports, mirroring the
// physical hierarchy of a compiled fabric. Like the bit database it is built
// once and treated as read-only afterwards.
type ModuleManager struct {
	modules []module
	ports   []port
	byName  map[string]ModuleId
}

// NewModuleManager creates an empty manager.
func NewModuleManager() *ModuleManager {
	return &ModuleManager{byName: make(map[string]ModuleId)}
}

// AddModule registers a new module under a unique name.
func (m *ModuleManager) AddModule(name string) (ModuleId, error) {
	if _, ok := m.byName[name]; ok {
		return InvalidModule, fmt.Errorf("fabric: duplicate module %q", name)
	}
	id := ModuleId(len(m.modules))
	m.modules = append(m.modules, module{name: name})
	m.byName[name] = id
	return id, nil
}

// AddPort registers a named port of the given bit width on a module.
func (m *ModuleManager) AddPort(mod ModuleId, name string, width int) PortId {
	id := PortId(len(m.ports))
	m.ports = append(m.ports, port{name: name, width: width})
	m.modules[mod].ports = append(m.modules[mod].ports, id)
	return id
}

// AddConfigurableChild appends a configurable child instance to parent. The
// instance name is synthesized from the child module name and instance index.
func (m *ModuleManager) AddConfigurableChild(parent, child ModuleId, instance int) {
	m.AddNamedConfigurableChild(parent, child, instance, m.synthesizeName(child, instance))
}

// AddNamedConfigurableChild appends a configurable child instance carrying an
// explicit instance name.
func (m *ModuleManager) AddNamedConfigurableChild(parent, child ModuleId, instance int, name string) {
	m.modules[parent].children = append(m.modules[parent].children, childEntry{
		module:   child,
		instance: instance,
		name:     name,
	})
}

// ConfigurableChildren returns the ordered configurable children of mod.
func (m *ModuleManager) ConfigurableChildren(mod ModuleId) []ConfigurableChild {
	entries := m.modules[mod].children
	out := make([]ConfigurableChild, len(entries))
	for i, e := range entries {
		out[i] = ConfigurableChild{Module: e.module, Instance: e.instance}
	}
	return out
}

// InstanceName returns the instance name of the (child, instance) pair under
// parent. The name registered at insertion wins; unknown pairs fall back to
// the deterministic synthesized form so lookups stay total.
func (m *ModuleManager) InstanceName(parent, child ModuleId, instance int) string {
	if parent >= 0 && int(parent) < len(m.modules) {
		for _, e := range m.modules[parent].children {
			if e.module == child && e.instance == instance {
				return e.name
			}
		}
	}
	return m.synthesizeName(child, instance)
}

func (m *ModuleManager) synthesizeName(child ModuleId, instance int) string {
	return fmt.Sprintf("%s_%d_", m.modules[child].name, instance)
}

// FindModule looks up a module by name.
func (m *ModuleManager) FindModule(name string) (ModuleId, bool) {
	id, ok := m.byName[name]
	return id, ok
}

// FindPort looks up a port of mod by name.
func (m *ModuleManager) FindPort(mod ModuleId, name string) (PortId, bool) {
	for _, p := range m.modules[mod].ports {
		if m.ports[p].name == name {
			return p, true
		}
	}
	return PortId(-1), false
}

// PortWidth returns the bit width of a port.
func (m *ModuleManager) PortWidth(p PortId) int {
	return m.ports[p].width
}

// ModuleName returns the name of mod.
func (m *ModuleManager) ModuleName(mod ModuleId) string {
	return m.modules[mod].name
}

// NumModules returns the total number of registered modules.
func (m *ModuleManager) NumModules() int {
	return len(m.modules)
}
