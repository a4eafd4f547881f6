// This file is part of eg3200.
//
// eg3200 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// eg3200 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with eg3200.  If not, see <https://www.gnu.org/licenses/>.

package environment_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/eacaemu/eg3200/environment"
	"github.com/eacaemu/eg3200/hardware/preferences"
	"github.com/eacaemu/eg3200/test"
)

func TestEnvironment(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.Test, p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, env.IsMainEmulation())
	test.ExpectFailure(t, env.AllowLogging())

	now := time.Date(1982, time.June, 1, 9, 30, 0, 0, time.UTC)
	test.ExpectSuccess(t, env.Normalise(now))
	test.ExpectSuccess(t, env.Random.ZeroSeed)
	test.ExpectEquality(t, env.Now(), now)

	main, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.IsMainEmulation())
	test.ExpectSuccess(t, main.AllowLogging())
}
