package vmplace_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vmplace-bb/vmplace"
)

func TestProblemValidate_DimensionMismatch(t *testing.T) {
	p := vmplace.Problem{
		Dimension: 2,
		VMs:       []vmplace.VM{{ID: 0, Demand: []int{1}, Initial: vmplace.NoPM}},
		PMs:       []vmplace.PM{{ID: 0, Capacity: []int{10, 10}}},
	}
	require.ErrorIs(t, p.Validate(), vmplace.ErrDimensionMismatch)
}

func TestProblemValidate_NegativeResource(t *testing.T) {
	p := vmplace.Problem{
		Dimension: 1,
		VMs:       []vmplace.VM{{ID: 0, Demand: []int{-1}, Initial: vmplace.NoPM}},
		PMs:       []vmplace.PM{{ID: 0, Capacity: []int{10}}},
	}
	require.ErrorIs(t, p.Validate(), vmplace.ErrNegativeResource)
}

func TestProblemValidate_InitialOutOfRange(t *testing.T) {
	p := vmplace.Problem{
		Dimension: 1,
		VMs:       []vmplace.VM{{ID: 0, Demand: []int{1}, Initial: 5}},
		PMs:       []vmplace.PM{{ID: 0, Capacity: []int{10}}},
	}
	require.ErrorIs(t, p.Validate(), vmplace.ErrInitialPMOutOfRange)
}

func TestProblemValidate_PMIndexMismatch(t *testing.T) {
	p := vmplace.Problem{
		Dimension: 1,
		VMs:       nil,
		PMs:       []vmplace.PM{{ID: 7, Capacity: []int{10}}},
	}
	require.ErrorIs(t, p.Validate(), vmplace.ErrInitialPMIndexMismatch)
}

func TestProblemValidate_OK(t *testing.T) {
	p := vmplace.Problem{
		Dimension: 1,
		VMs:       []vmplace.VM{{ID: 0, Demand: []int{1}, Initial: 0}},
		PMs:       []vmplace.PM{{ID: 0, Capacity: []int{10}}},
	}
	require.NoError(t, p.Validate())
}

func TestParamsValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*vmplace.Params)
		wantErr error
	}{
		{"bound threshold zero", func(p *vmplace.Params) { p.BoundThreshold = 0 }, vmplace.ErrInvalidBoundThreshold},
		{"bound threshold too high", func(p *vmplace.Params) { p.BoundThreshold = 1.5 }, vmplace.ErrInvalidBoundThreshold},
		{"migration ratio zero", func(p *vmplace.Params) { p.MaxMigrationsRatio = 0 }, vmplace.ErrInvalidMigrationRatio},
		{"weight hosts zero", func(p *vmplace.Params) { p.WeightHosts = 0 }, vmplace.ErrInvalidWeights},
		{"weight migrations negative", func(p *vmplace.Params) { p.WeightMigrations = -1 }, vmplace.ErrInvalidWeights},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := vmplace.DefaultParams()
			tc.mutate(&p)
			require.ErrorIs(t, p.Validate(), tc.wantErr)
		})
	}
	require.NoError(t, vmplace.DefaultParams().Validate())
}

func TestSortMethod_StringAndUnmarshal(t *testing.T) {
	require.Equal(t, "lexicographic", vmplace.SortLexicographic.String())
	require.Equal(t, "none", vmplace.SortNone.String())

	var s vmplace.SortMethod
	require.NoError(t, s.UnmarshalText([]byte("sum")))
	require.Equal(t, vmplace.SortSum, s)

	require.Error(t, s.UnmarshalText([]byte("bogus")))
}
