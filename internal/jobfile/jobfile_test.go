package jobfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/katalvlaran/lvsphere/healpix"
	"github.com/katalvlaran/lvsphere/internal/jobfile"
	"github.com/katalvlaran/lvsphere/nngraph"
	"github.com/katalvlaran/lvsphere/pixelization"
	"github.com/katalvlaran/lvsphere/sphere"
)

const sample = `
output_dir = "out/${lower(env.RUN)}"
database   = format("%s.db", env.RUN)

graph "coarse" {
  nside = 2
}

graph "ring" {
  nside      = 1
  nest       = false
  symmetrize = "maximum"
  center     = true
  html       = true
  spy        = true
}
`

func TestParse(t *testing.T) {
	job, err := jobfile.Parse("job.hcl", []byte(sample), map[string]string{"RUN": "Nightly"})
	require.NoError(t, err)

	assert.Equal(t, "out/nightly", job.OutputDir)
	assert.Equal(t, "Nightly.db", job.Database)
	require.Len(t, job.Graphs, 2)

	c := job.Graphs[0]
	assert.Equal(t, "coarse", c.Name)
	assert.Equal(t, 2, c.Nside)
	assert.True(t, c.Nested())
	assert.False(t, c.HTML)

	r := job.Graphs[1]
	assert.False(t, r.Nested())
	assert.Equal(t, "maximum", r.Symmetrize)
	assert.True(t, r.Center)
	assert.False(t, r.Rescale)
	assert.True(t, r.HTML && r.Spy)
}

func TestGraph_OptionsBuild(t *testing.T) {
	job, err := jobfile.Parse("job.hcl", []byte(sample), map[string]string{"RUN": "x"})
	require.NoError(t, err)

	opts, err := job.Graphs[1].Options()
	require.NoError(t, err)
	g, err := sphere.NewHealpix(opts...)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Nside)
	assert.Equal(t, pixelization.Ring, g.Ordering)
	assert.Equal(t, nngraph.Maximum, g.Symmetrize)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"syntax":        `graph "a" {`,
		"missing nside": `graph "a" {}`,
		"unknown attr":  `graph "a" { nside = 1 bogus = 2 }`,
		"no graphs":     `database = "x.db"`,
		"duplicate":     "graph \"a\" {\n nside = 1\n}\ngraph \"a\" {\n nside = 2\n}",
		"bad mode":      "graph \"a\" {\n nside = 1\n symmetrize = \"mean\"\n}",
		"unknown env":   "output_dir = env.NOPE\ngraph \"a\" {\n nside = 1\n}",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := jobfile.Parse("bad.hcl", []byte(src), map[string]string{"HOME": "/root"})
			require.Error(t, err)
		})
	}

	_, err := jobfile.Parse("dup.hcl", []byte("graph \"a\" {\n nside = 1\n}\ngraph \"a\" {\n nside = 2\n}"), nil)
	require.ErrorIs(t, err, jobfile.ErrInvalidJob)
}

func TestLoad(t *testing.T) {
	t.Setenv("LVSPHERE_RUN", "ci")
	path := filepath.Join(t.TempDir(), "job.hcl")
	require.NoError(t, os.WriteFile(path, []byte("database = \"${env.LVSPHERE_RUN}.db\"\ngraph \"g\" {\n nside = 4\n}\n"), 0o600))

	job, err := jobfile.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "ci.db", job.Database)

	_, err = jobfile.Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}
