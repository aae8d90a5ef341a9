package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// LoadRuntimeConstants reads a [runtime] section from the INI file at path,
// so a deployment can override any subset of §6's tunables without
// touching code. Each key is read with an explicit default (rather than
// via MapTo) so that a key absent from the file keeps its
// DefaultRuntimeConstants value instead of being reset to the zero value.
func LoadRuntimeConstants(path string) (RuntimeConstants, error) {
	def := DefaultRuntimeConstants()

	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return def, fmt.Errorf("%w: %v", ErrIniLoad, err)
	}

	section := cfg.Section("runtime")
	return RuntimeConstants{
		SubgraphSizeStd:     section.Key("subgraph_size_std").MustFloat64(def.SubgraphSizeStd),
		RandEdgesVar:        section.Key("rand_edges_var").MustFloat64(def.RandEdgesVar),
		ConsecSwapsBias:     section.Key("consec_swaps_bias").MustFloat64(def.ConsecSwapsBias),
		GlinkSearchPatience: section.Key("glink_search_patience").MustInt(def.GlinkSearchPatience),
		VF2CallLimit:        section.Key("vf2_call_limit").MustInt(def.VF2CallLimit),
	}, nil
}
