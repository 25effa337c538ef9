package config

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/katalvlaran/vmplace-bb/internal/genproblem"
	"github.com/katalvlaran/vmplace-bb/vmplace"
)

// ProfileSpec is one named, YAML-decodable parameter profile. Its fields
// mirror vmplace.Params; SortMethod values decode from the strings "none",
// "lexicographic", "maximum", "sum" via vmplace.SortMethod.UnmarshalText.
type ProfileSpec struct {
	Name               string              `mapstructure:"name"`
	FailFirst          bool                `mapstructure:"fail_first"`
	VMSortMethod       vmplace.SortMethod  `mapstructure:"vm_sort_method"`
	PMSortMethod       vmplace.SortMethod  `mapstructure:"pm_sort_method"`
	InitialPMFirst     bool                `mapstructure:"initial_pm_first"`
	SymmetryBreaking   bool                `mapstructure:"symmetry_breaking"`
	IntelligentBound   bool                `mapstructure:"intelligent_bound"`
	BoundThreshold     float64             `mapstructure:"bound_threshold"`
	MaxMigrationsRatio int                 `mapstructure:"max_migrations_ratio"`
	Timeout            time.Duration       `mapstructure:"timeout"`
	WeightHosts        int                 `mapstructure:"weight_hosts"`
	WeightMigrations   int                 `mapstructure:"weight_migrations"`
}

// ToParams converts a decoded profile into vmplace.Params, filling any
// zero-valued (or, for Timeout, non-positive) weight/ratio/threshold/timeout
// field from vmplace.DefaultParams. The boolean and sort-method fields are
// copied as decoded, so an omitted one is false or SortNone rather than the
// DefaultParams value.
func (s ProfileSpec) ToParams() vmplace.Params {
	p := vmplace.DefaultParams()
	p.Name = s.Name
	p.FailFirst = s.FailFirst
	p.VMSortMethod = s.VMSortMethod
	p.PMSortMethod = s.PMSortMethod
	p.InitialPMFirst = s.InitialPMFirst
	p.SymmetryBreaking = s.SymmetryBreaking
	p.IntelligentBound = s.IntelligentBound
	if s.BoundThreshold > 0 {
		p.BoundThreshold = s.BoundThreshold
	}
	if s.MaxMigrationsRatio > 0 {
		p.MaxMigrationsRatio = s.MaxMigrationsRatio
	}
	if s.Timeout > 0 {
		p.Timeout = s.Timeout
	}
	if s.WeightHosts > 0 {
		p.WeightHosts = s.WeightHosts
	}
	if s.WeightMigrations > 0 {
		p.WeightMigrations = s.WeightMigrations
	}

	return p
}

// Run is the fully decoded contents of one run configuration file.
type Run struct {
	Problem  genproblem.Config `mapstructure:"problem"`
	Profiles []ProfileSpec     `mapstructure:"profiles"`
}

// Load reads and decodes a YAML run configuration file at path.
func Load(path string) (Run, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return Run{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var run Run
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&run, decodeHook); err != nil {
		return Run{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if len(run.Profiles) == 0 {
		run.Profiles = []ProfileSpec{{Name: "default"}}
	}

	return run, nil
}

// Params decodes every profile in run to a ready-to-use vmplace.Params.
func (r Run) Params() []vmplace.Params {
	out := make([]vmplace.Params, len(r.Profiles))
	for i, s := range r.Profiles {
		out[i] = s.ToParams()
	}

	return out
}
