// This file is part of WearCapture.
//
// WearCapture is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// WearCapture is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with WearCapture.  If not, see <https://www.gnu.org/licenses/>.

package capture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/wearcapture/capture"
	"github.com/jetsetilly/wearcapture/wcerrors"
)

func validConfig() capture.Config {
	cfg := capture.DefaultConfig()
	cfg.OutputPath = "out.png"
	return cfg
}

func TestValidateDefaultsAreValid(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateEmptyOutputPath(t *testing.T) {
	cfg := validConfig()
	cfg.OutputPath = ""
	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, wcerrors.Is(err, wcerrors.InvalidConfig))
}

func TestValidateMaxSwipes(t *testing.T) {
	cfg := validConfig()
	cfg.MaxSwipes = 0
	require.Error(t, cfg.Validate())
}

func TestValidateOverlapRatioOrdering(t *testing.T) {
	cfg := validConfig()
	cfg.MinOverlapRatio = 0.9
	cfg.MaxOverlapRatio = 0.5
	require.Error(t, cfg.Validate())
}

func TestValidateDownscaleWidthFloor(t *testing.T) {
	cfg := validConfig()
	cfg.DownscaleWidth = 32
	require.Error(t, cfg.Validate())
}

func TestValidateSimilarityThresholdRange(t *testing.T) {
	cfg := validConfig()
	cfg.SimilarityThreshold = 1.5
	require.Error(t, cfg.Validate())
}
