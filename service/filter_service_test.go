package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asb-server/models/venue"
)

func demoVenues() []venue.Venue {
	return []venue.Venue{
		{Name: "Trax Padel", Location: "Abdoun", Type: "Padel", PriceJOD: 25, IsIndoor: true},
		{Name: "Fitness First Sports", Location: "Sweifieh", Type: "Soccer", PriceJOD: 30, IsIndoor: false},
		{Name: "Jordan Sports City", Location: "Shmeisani", Type: "Soccer", PriceJOD: 15, IsIndoor: false},
		{Name: "Elite Padel Club", Location: "Abdoun", Type: "Padel", PriceJOD: 35, IsIndoor: true},
	}
}

func TestApplySportFilter(t *testing.T) {
	fs := NewFilterService()

	padel := fs.ApplySportFilter(demoVenues(), "I want to play padel tomorrow")
	assert.Len(t, padel, 2)
	for _, v := range padel {
		assert.Equal(t, "Padel", v.Type)
	}

	soccer := fs.ApplySportFilter(demoVenues(), "any football pitch?")
	assert.Len(t, soccer, 2)
	for _, v := range soccer {
		assert.Equal(t, "Soccer", v.Type)
	}

	// No sport keyword leaves the list unchanged
	all := fs.ApplySportFilter(demoVenues(), "something fun")
	assert.Len(t, all, 4)
}

func TestApplyPriceRule_BudgetKeywords(t *testing.T) {
	fs := NewFilterService()

	cheap := fs.ApplyPriceRule(demoVenues(), "cheap court please")
	assert.Len(t, cheap, 1)
	assert.Equal(t, "Jordan Sports City", cheap[0].Name)

	// "cheap padel in abdoun": both padel venues are >= 20 JOD, so the
	// price rule empties the list.
	padel := fs.ApplySportFilter(demoVenues(), "cheap padel in abdoun")
	result := fs.ApplyPriceRule(padel, "cheap padel in abdoun")
	assert.Empty(t, result)

	// Without budget keywords both padel venues survive.
	padel = fs.ApplySportFilter(demoVenues(), "padel in abdoun")
	result = fs.ApplyPriceRule(padel, "padel in abdoun")
	assert.Len(t, result, 2)
}

func TestApplyLocationFilter(t *testing.T) {
	fs := NewFilterService()

	abdoun := fs.ApplyLocationFilter(demoVenues(), "abdoun")
	assert.Len(t, abdoun, 2)

	// Partial, case-insensitive match
	partial := fs.ApplyLocationFilter(demoVenues(), "  SWEIF ")
	assert.Len(t, partial, 1)
	assert.Equal(t, "Fitness First Sports", partial[0].Name)

	// Empty location leaves list unchanged
	all := fs.ApplyLocationFilter(demoVenues(), "")
	assert.Len(t, all, 4)
}

func TestApplyTimeRule(t *testing.T) {
	fs := NewFilterService()

	for _, timeOfDay := range []string{"Noon", "Afternoon"} {
		sorted := fs.ApplyTimeRule(demoVenues(), timeOfDay)
		// Every indoor venue precedes every outdoor venue.
		lastIndoor := -1
		firstOutdoor := len(sorted)
		for i, v := range sorted {
			if v.IsIndoor && i > lastIndoor {
				lastIndoor = i
			}
			if !v.IsIndoor && i < firstOutdoor {
				firstOutdoor = i
			}
		}
		assert.Less(t, lastIndoor, firstOutdoor, "indoor venues must come first at %s", timeOfDay)
		// Price breaks ties within each group.
		assert.Equal(t, "Trax Padel", sorted[0].Name)
	}

	morning := fs.ApplyTimeRule(demoVenues(), "Morning")
	assert.False(t, morning[0].IsIndoor)
	assert.Equal(t, "Jordan Sports City", morning[0].Name)

	// Evening keeps the incoming order
	evening := fs.ApplyTimeRule(demoVenues(), "Evening")
	assert.Equal(t, demoVenues(), evening)
}

func TestApplyTimeRule_Deterministic(t *testing.T) {
	fs := NewFilterService()

	first := fs.ApplyTimeRule(demoVenues(), "Afternoon")
	second := fs.ApplyTimeRule(demoVenues(), "Afternoon")
	assert.Equal(t, first, second)
}

func TestLabelAIPick(t *testing.T) {
	fs := NewFilterService()
	input := demoVenues()

	labeled := fs.LabelAIPick(input)

	// Exactly one venue carries the label, and it is the first.
	count := 0
	for i, v := range labeled {
		if v.AILabel != "" {
			count++
			assert.Equal(t, 0, i)
			assert.Equal(t, AI_RECOMMENDED_LABEL, v.AILabel)
		}
	}
	assert.Equal(t, 1, count)

	// Input venues are never mutated.
	for _, v := range input {
		assert.Empty(t, v.AILabel)
	}

	assert.Empty(t, fs.LabelAIPick(nil))
}

func TestRecommend_Scenarios(t *testing.T) {
	fs := NewFilterService()

	// "cheap padel in abdoun" with only venues priced >= 20 -> empty.
	got := fs.Recommend(demoVenues(), "cheap padel in abdoun", "abdoun", "Afternoon")
	assert.Empty(t, got)

	// "padel in abdoun" -> both padel venues, cheaper one first and labeled.
	got = fs.Recommend(demoVenues(), "padel in abdoun", "abdoun", "Afternoon")
	assert.Len(t, got, 2)
	assert.Equal(t, "Trax Padel", got[0].Name)
	assert.Equal(t, AI_RECOMMENDED_LABEL, got[0].AILabel)
	assert.Empty(t, got[1].AILabel)
}

func TestGenerateBotMessage(t *testing.T) {
	fs := NewFilterService()

	assert.Equal(t,
		"I couldn't find any venues matching your criteria. Try adjusting your preferences!",
		fs.GenerateBotMessage(nil, "anything", "Afternoon"))

	outdoorSoccer := []venue.Venue{{Name: "Jordan Sports City", Location: "Shmeisani", Type: "Soccer", PriceJOD: 15}}
	msg := fs.GenerateBotMessage(outdoorSoccer, "soccer game", "Morning")
	assert.Contains(t, msg, "outdoor soccer this morning")
	assert.Contains(t, msg, "Jordan Sports City")

	msg = fs.GenerateBotMessage(outdoorSoccer, "cheap soccer", "Afternoon")
	// Outdoor soccer rule wins over the budget rule, as the query mentions soccer.
	assert.Contains(t, msg, "outdoor soccer this afternoon")

	msg = fs.GenerateBotMessage(outdoorSoccer, "something cheap", "Afternoon")
	assert.Contains(t, msg, "best budget option")
	assert.Contains(t, msg, "15 JOD")

	indoor := []venue.Venue{{Name: "Trax Padel", Location: "Abdoun", Type: "Padel", PriceJOD: 25, IsIndoor: true}}
	msg = fs.GenerateBotMessage(indoor, "padel", "Afternoon")
	assert.Contains(t, msg, "air-conditioned indoor courts")

	msg = fs.GenerateBotMessage(outdoorSoccer, "somewhere to play", "Night")
	assert.Contains(t, msg, "I found 1 great option for you!")
	assert.Contains(t, msg, "15 JOD")
}

func TestBuildFilterDescription(t *testing.T) {
	fs := NewFilterService()

	assert.Equal(t, "general", fs.BuildFilterDescription("hello", ""))
	assert.Equal(t, "sport: Padel", fs.BuildFilterDescription("padel please", ""))
	assert.Equal(t, "sport: Soccer + price: budget", fs.BuildFilterDescription("cheap football", ""))
	assert.Equal(t, "sport: Padel + price: budget + location: Abdoun",
		fs.BuildFilterDescription("affordable padel", "Abdoun"))
}
