package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/social-core/internal/domain/entities"
	"github.com/ersonp/social-core/internal/domain/services"
	"github.com/ersonp/social-core/internal/infrastructure/config"
	"github.com/ersonp/social-core/internal/infrastructure/parsers"
)

func samplePeople() []entities.Person {
	return []entities.Person{
		entities.NewPerson(entities.Person{
			ID:             "p1",
			FirstName:      "Ann",
			LastName:       "Lee",
			BirthDate:      time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC),
			Gender:         "female",
			Birthplace:     "Oslo",
			Residence:      "Bergen",
			Education:      []string{"UiO"},
			Workplaces:     []string{"Acme", "Initech"},
			FavoriteMovies: []string{"Heat", "Up"},
			GroupCode:      "g1",
		}),
		entities.NewPerson(entities.Person{ID: "p2", FirstName: "Bo", LastName: "Kim"}),
	}
}

func TestFormatPeople_Basic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatPeople(&buf, formatBasic, samplePeople()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID", "NAME", "SURNAME"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"p1", "Ann", "Lee"}, strings.Fields(lines[1]))
	assert.NotContains(t, buf.String(), "Oslo")
}

func TestFormatPeople_More(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatPeople(&buf, formatMore, samplePeople()))

	result := buf.String()
	assert.Contains(t, result, "BIRTHPLACE")
	assert.Contains(t, result, "1-2-1990")
	assert.Contains(t, result, "Acme;Initech")
	assert.Contains(t, result, "Heat;Up")
}

func TestFormatPeople_CSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatPeople(&buf, formatCSV, samplePeople()))

	raw, err := (&parsers.CSVParser{}).ParsePeople(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, raw, 2)

	assert.Equal(t, "p1", raw[0].ID)
	assert.Equal(t, "1-2-1990", raw[0].BirthDate)
	assert.Equal(t, []string{"Acme", "Initech"}, raw[0].Workplaces)
	assert.Equal(t, []string{"Heat", "Up"}, raw[0].Movies)
	assert.Equal(t, "", raw[1].BirthDate)
}

func TestFormatPeople_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatPeople(&buf, formatJSON, samplePeople()))

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Len(t, parsed, 2)
}

func TestFormatSections(t *testing.T) {
	people := samplePeople()
	sections := []section{
		{key: "Heat", title: "Heat (1):", people: people[:1]},
		{key: "Alien", title: "Alien (0):"},
	}

	t.Run("basic", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, formatSections(&buf, formatBasic, "film", sections, nil))

		result := buf.String()
		assert.Contains(t, result, "Heat (1):")
		assert.Contains(t, result, "Alien (0):\n  (none)")
	})

	t.Run("csv adds key column", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, formatSections(&buf, formatCSV, "film", sections, nil))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "film,idperson,"))
		assert.True(t, strings.HasPrefix(lines[1], "Heat,p1,Ann,Lee,"))
	})

	t.Run("json encodes value", func(t *testing.T) {
		var buf bytes.Buffer
		groups := []services.MovieGroup{{Title: "Heat", People: people[:1]}}
		require.NoError(t, formatSections(&buf, formatJSON, "film", sections, groups))
		assert.Contains(t, buf.String(), `"title": "Heat"`)
	})
}

func TestResidentialJSON(t *testing.T) {
	results := []services.SeedResult{
		{SeedID: "p1", Birthplace: "Oslo", CoResidents: samplePeople()[:1]},
		{SeedID: "ghost", CoResidents: []entities.Person{}, Err: entities.ErrPersonNotFound},
	}

	out := residentialJSON(results)
	require.Len(t, out, 2)
	assert.Empty(t, out[0].Error)
	assert.Equal(t, entities.ErrPersonNotFound.Error(), out[1].Error)

	sections := residentialSections(results)
	assert.Equal(t, "Born in Oslo, like p1:", sections[0].title)
	assert.Equal(t, "Seed ghost: not found", sections[1].title)
}

func TestPrinter_WriteToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.csv")
	p := &printer{format: formatCSV, output: output}

	require.NoError(t, p.people(samplePeople()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "idperson,name,lastname"))
}

func TestPrinter_Validate(t *testing.T) {
	assert.NoError(t, (&printer{format: formatMore}).validate())

	err := (&printer{format: "markdown"}).validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestPrinter_ResolveOutputIntoDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "files")
	data := config.DataConfig{Dir: dataDir}

	p := &printer{format: formatCSV, output: "city.csv"}
	p.resolveOutput(data)
	assert.Equal(t, filepath.Join(dataDir, "city.csv"), p.output)

	require.NoError(t, p.people(samplePeople()))
	_, err := os.Stat(filepath.Join(dataDir, "city.csv"))
	require.NoError(t, err)

	explicit := filepath.Join(t.TempDir(), "out.csv")
	p = &printer{output: explicit}
	p.resolveOutput(data)
	assert.Equal(t, explicit, p.output)

	p = &printer{}
	p.resolveOutput(data)
	assert.Empty(t, p.output)
}

func TestSeedFilePath(t *testing.T) {
	data := config.DataConfig{Dir: "files", SeedsFile: "residential.txt"}

	assert.Equal(t, filepath.Join("files", "residential.txt"), seedFilePath(data, nil))
	assert.Equal(t, filepath.Join("files", "seeds.txt"), seedFilePath(data, []string{"seeds.txt"}))

	abs := filepath.Join(t.TempDir(), "seeds.txt")
	assert.Equal(t, abs, seedFilePath(data, []string{abs}))
}
