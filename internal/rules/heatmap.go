package rules

import (
	"time"

	"github.com/PromoPilot/scheduler-service/internal/model"
)

// Insight is the per-platform posting-time advice shown next to the
// heatmap.
type Insight struct {
	PeakTime string   `json:"peak_time"`
	BestDays []string `json:"best_days"`
	Avoid    string   `json:"avoid"`
}

// engagementProfile parameterizes a platform's 7x24 engagement table.
// Scores fall off with cyclic distance from the nearest peak hour.
type engagementProfile struct {
	base      int
	peakHours []int
	dayWeight [7]int // Sunday-first
}

var profiles = map[model.Platform]engagementProfile{
	model.PlatformInstagram: {
		base:      22,
		peakHours: []int{11, 19},
		dayWeight: [7]int{8, 4, 10, 14, 12, 10, 6},
	},
	model.PlatformFacebook: {
		base:      18,
		peakHours: []int{13, 20},
		dayWeight: [7]int{10, 6, 8, 12, 10, 8, 12},
	},
	model.PlatformTwitter: {
		base:      25,
		peakHours: []int{9, 12, 17},
		dayWeight: [7]int{2, 10, 12, 14, 12, 10, 2},
	},
	model.PlatformLinkedIn: {
		base:      15,
		peakHours: []int{8, 12},
		dayWeight: [7]int{0, 12, 14, 16, 14, 10, 0},
	},
	model.PlatformYouTube: {
		base:      20,
		peakHours: []int{16, 21},
		dayWeight: [7]int{14, 4, 6, 8, 10, 14, 16},
	},
}

var insights = map[model.Platform]Insight{
	model.PlatformInstagram: {
		PeakTime: "7:00 PM",
		BestDays: []string{"Tuesday", "Wednesday", "Thursday"},
		Avoid:    "Early mornings and late nights",
	},
	model.PlatformFacebook: {
		PeakTime: "1:00 PM",
		BestDays: []string{"Wednesday", "Saturday", "Sunday"},
		Avoid:    "Monday mornings",
	},
	model.PlatformTwitter: {
		PeakTime: "9:00 AM",
		BestDays: []string{"Tuesday", "Wednesday", "Thursday"},
		Avoid:    "Weekends",
	},
	model.PlatformLinkedIn: {
		PeakTime: "8:00 AM",
		BestDays: []string{"Tuesday", "Wednesday", "Thursday"},
		Avoid:    "Weekends and evenings",
	},
	model.PlatformYouTube: {
		PeakTime: "9:00 PM",
		BestDays: []string{"Friday", "Saturday", "Sunday"},
		Avoid:    "Weekday mornings",
	},
}

// Engagement returns the engagement score for a platform at the given
// weekday and hour, on a 0..100 scale. Unknown platforms fall back to
// Instagram; out-of-range hours score zero.
func Engagement(p model.Platform, day time.Weekday, hour int) int {
	if hour < 0 || hour > 23 {
		return 0
	}

	profile, ok := profiles[p]
	if !ok {
		profile = profiles[model.PlatformInstagram]
	}

	score := profile.base + profile.dayWeight[int(day)] + hourBoost(profile.peakHours, hour)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// Heatmap returns the full Sunday-first 7x24 engagement table for a
// platform.
func Heatmap(p model.Platform) [7][24]int {
	var table [7][24]int
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			table[day][hour] = Engagement(p, time.Weekday(day), hour)
		}
	}
	return table
}

// InsightFor returns the posting-time advice for a platform, falling
// back to Instagram for unknown keys.
func InsightFor(p model.Platform) Insight {
	if insight, ok := insights[p]; ok {
		return insight
	}
	return insights[model.PlatformInstagram]
}

func hourBoost(peaks []int, hour int) int {
	nearest := 24
	for _, peak := range peaks {
		d := hour - peak
		if d < 0 {
			d = -d
		}
		if 24-d < d {
			d = 24 - d
		}
		if d < nearest {
			nearest = d
		}
	}
	boost := 52 - nearest*8
	if boost < 0 {
		boost = 0
	}
	return boost
}
