package normalize

import (
	"errors"
	"strings"
	"testing"

	"devevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Dev Conf 2024", "dev-conf-2024"},
		{"  React Summit: Europe!  ", "react-summit-europe"},
		{"Go -- Day", "go-day"},
		{"--Leading and trailing--", "leading-and-trailing"},
		{"snake_case stays", "snake_case-stays"},
		{"Dev Conf!!", "dev-conf"},
		{"Dev Conf??", "dev-conf"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"Dev\u00a0Conf", "dev-conf"},
		{"Dev\u2003Conf", "dev-conf"},
		{"Dev\vConf", "dev-conf"},
		{"Dev \u3000\u2028 Conf\ufeff", "dev-conf"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlug_Idempotent(t *testing.T) {
	inputs := []string{"Dev Conf 2024", "  A  -  B  ", "Ünïcode Event", "Hello, World!", "x_y-z", ""}
	for _, in := range inputs {
		once := GenerateSlug(in)
		assert.Equal(t, once, GenerateSlug(once), "input %q", in)
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2:30 PM", "14:30", false},
		{"14:30", "14:30", false},
		{"14:30:00", "14:30", false},
		{"12:00 AM", "00:00", false},
		{"12:00 PM", "12:00", false},
		{"9:05am", "09:05", false},
		{"2:30\u00a0PM", "14:30", false},
		{"2:30\u202fpm", "14:30", false},
		{"2:30  PM", "", true},
		{"11:59 pm", "23:59", false},
		{" 08:15 ", "08:15", false},
		{"0:00", "00:00", false},
		{"25:00", "", true},
		{"13:00 PM", "", true},
		{"10:60", "", true},
		{"noon", "", true},
		{"1430", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-03-05", "2024-03-05", false},
		{"2024-03-05T23:30:00-05:00", "2024-03-06", false},
		{"2024-03-05T10:00:00Z", "2024-03-05", false},
		{"March 5, 2024", "2024-03-05", false},
		{"Mar 5, 2024", "2024-03-05", false},
		{"03/05/2024", "2024-03-05", false},
		{"not-a-date", "", true},
		{"2024-13-01", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("dev@example.com"))
	assert.True(t, IsValidEmail("  dev@example.co.uk "))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail("a b@example.com"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestEmail_NormalizesCase(t *testing.T) {
	got, err := Email("  Dev@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", got)

	_, err = Email("not-an-email")
	assert.True(t, errors.Is(err, domain.ErrInvalidEmail))
}

func validCandidate() *domain.EventCandidate {
	return &domain.EventCandidate{
		Title:       "Dev Conf 2024",
		Description: "A conference for developers",
		Overview:    "Talks and workshops",
		Image:       "data:image/png;base64,AAAA",
		Venue:       "Moscone Center",
		Location:    "San Francisco, CA",
		Date:        "2024-03-05",
		Time:        "2:30 PM",
		Mode:        "hybrid",
		Audience:    "Developers",
		Agenda:      []string{"Registration", "Keynote"},
		Organizer:   "DevOrg",
		Tags:        []string{"ai", "cloud"},
	}
}

func TestValidateRequiredFields(t *testing.T) {
	require.NoError(t, ValidateRequiredFields(validCandidate()))

	c := validCandidate()
	c.Venue = "   "
	c.Organizer = ""
	err := ValidateRequiredFields(c)
	assert.True(t, errors.Is(err, domain.MissingField("venue")), "first missing field is reported")

	c = validCandidate()
	c.Agenda = []string{" ", ""}
	assert.True(t, errors.Is(ValidateRequiredFields(c), domain.EmptyList("agenda")))

	c = validCandidate()
	c.Tags = nil
	assert.True(t, errors.Is(ValidateRequiredFields(c), domain.EmptyList("tags")))
}

func TestEvent_Success(t *testing.T) {
	c := validCandidate()
	c.Title = "  Dev Conf 2024  "
	c.Tags = []string{" ai ", "", "cloud"}

	n, err := Event(c)
	require.NoError(t, err)
	assert.Equal(t, "Dev Conf 2024", n.Title)
	assert.Equal(t, "dev-conf-2024", n.Slug)
	assert.Equal(t, "2024-03-05", n.Date)
	assert.Equal(t, "14:30", n.Time)
	assert.Equal(t, []string{"ai", "cloud"}, n.Tags)
	assert.Equal(t, []string{"Registration", "Keynote"}, n.Agenda)
}

func TestEvent_MissingEachRequiredField(t *testing.T) {
	blank := map[string]func(c *domain.EventCandidate){
		"title":       func(c *domain.EventCandidate) { c.Title = "" },
		"description": func(c *domain.EventCandidate) { c.Description = " " },
		"overview":    func(c *domain.EventCandidate) { c.Overview = "" },
		"image":       func(c *domain.EventCandidate) { c.Image = "" },
		"venue":       func(c *domain.EventCandidate) { c.Venue = "" },
		"location":    func(c *domain.EventCandidate) { c.Location = "\t" },
		"date":        func(c *domain.EventCandidate) { c.Date = "" },
		"time":        func(c *domain.EventCandidate) { c.Time = "" },
		"mode":        func(c *domain.EventCandidate) { c.Mode = "" },
		"audience":    func(c *domain.EventCandidate) { c.Audience = "" },
		"organizer":   func(c *domain.EventCandidate) { c.Organizer = "" },
	}
	for name, fn := range blank {
		t.Run(name, func(t *testing.T) {
			c := validCandidate()
			fn(c)
			n, err := Event(c)
			require.Error(t, err)
			assert.Nil(t, n)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.True(t, errors.Is(err, domain.MissingField(name)))
		})
	}
}

func TestEvent_MissingFieldsMatchValidateRequiredFields(t *testing.T) {
	c := validCandidate()
	c.Venue = ""
	c.Organizer = " "

	_, err := Event(c)
	require.Error(t, err)
	var de *domain.Error
	require.True(t, errors.As(err, &de))
	require.Len(t, de.Causes, 2)
	assert.True(t, errors.Is(de.Causes[0], ValidateRequiredFields(c)), "first cause is the field ValidateRequiredFields reports")
	assert.True(t, errors.Is(de.Causes[1], domain.MissingField("organizer")))
}

func TestEvent_RejectsInvalidUTF8(t *testing.T) {
	c := validCandidate()
	c.Venue = "Hall \xff"
	c.Tags = []string{"ai", "cl\xc3oud"}

	n, err := Event(c)
	require.Error(t, err)
	assert.Nil(t, n)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.True(t, errors.Is(err, domain.InvalidFormat("venue", "")))
	assert.True(t, errors.Is(err, domain.InvalidFormat("tags", "")))

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Contains(t, de.Messages(), "venue must be valid UTF-8 text")
}

func TestEvent_CollectsAllProblems(t *testing.T) {
	c := validCandidate()
	c.Description = strings.Repeat("x", MaxTextLength+1)
	c.Mode = "virtual"
	c.Time = "25:00"
	c.Date = "someday"
	c.Tags = []string{}

	_, err := Event(c)
	require.Error(t, err)

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.KindValidation, de.Kind)
	assert.Len(t, de.Messages(), 5)
	assert.True(t, errors.Is(err, domain.EmptyList("tags")))
	assert.True(t, errors.Is(err, domain.InvalidFormat("time", "")))
	assert.True(t, errors.Is(err, domain.InvalidFormat("date", "")))
	assert.Contains(t, de.Messages(), "Description cannot exceed 500 characters")
}

func TestEvent_DescriptionLimitCountsCharacters(t *testing.T) {
	c := validCandidate()
	c.Description = strings.Repeat("é", MaxTextLength)
	_, err := Event(c)
	assert.NoError(t, err)
}

func TestEvent_TitleWithoutSlugCharacters(t *testing.T) {
	c := validCandidate()
	c.Title = "!!!"
	_, err := Event(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.InvalidFormat("title", "")))
}
