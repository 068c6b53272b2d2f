package convention_test

import (
	"testing"

	"github.com/meenmo/fincal/convention"
	"github.com/stretchr/testify/require"
)

func TestRollInverseInvolution(t *testing.T) {
	should := require.New(t)

	rolls := []convention.Roll{
		convention.Following,
		convention.Preceding,
		convention.ModifiedFollowing,
		convention.ModifiedPreceding,
		convention.Unadjusted,
	}
	for _, r := range rolls {
		should.Equal(r, r.Inverse().Inverse(), "Inverse should be involutive for %s", r)
	}

	should.Equal(convention.Preceding, convention.Following.Inverse())
	should.Equal(convention.ModifiedPreceding, convention.ModifiedFollowing.Inverse())
	should.Equal(convention.Unadjusted, convention.Unadjusted.Inverse())
}

func TestRollValid(t *testing.T) {
	should := require.New(t)

	should.True(convention.Following.Valid())
	should.False(convention.Roll("bogus").Valid())
}

func TestRuleImplemented(t *testing.T) {
	should := require.New(t)

	should.True(convention.Backward.Implemented())
	should.True(convention.CDS2015.Implemented())
	should.False(convention.Twentieth.Implemented())
	should.False(convention.ThirdWednesDay.Implemented())
}

func TestRuleIsCDSFamily(t *testing.T) {
	should := require.New(t)

	should.True(convention.CDS.IsCDSFamily())
	should.True(convention.CDS2015.IsCDSFamily())
	should.True(convention.OldCDS.IsCDSFamily())
	should.True(convention.TwentiethIMM.IsCDSFamily())
	should.False(convention.Backward.IsCDSFamily())
}
