// Package models holds the weather snapshot shared by the cache, the lookup use
// case and the HTTP adapter. JSON tags follow the provider's field names so the
// cached document and the response body have the same shape.
package models

// Location identifies where a snapshot was observed
type Location struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

// Condition is the categorical description of the current weather
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// CurrentConditions holds the measured values at observation time
type CurrentConditions struct {
	LastUpdatedEpoch int64      `json:"last_updated_epoch"`
	LastUpdated      string     `json:"last_updated"`
	TempC            float64    `json:"temp_c"`
	TempF            float64    `json:"temp_f"`
	IsDay            int        `json:"is_day"`
	Condition        *Condition `json:"condition"`
	WindMph          float64    `json:"wind_mph"`
	WindKph          float64    `json:"wind_kph"`
	WindDegree       int        `json:"wind_degree"`
	WindDir          string     `json:"wind_dir"`
	PressureMb       float64    `json:"pressure_mb"`
	PressureIn       float64    `json:"pressure_in"`
	PrecipMm         float64    `json:"precip_mm"`
	PrecipIn         float64    `json:"precip_in"`
	Humidity         int        `json:"humidity"`
	Cloud            int        `json:"cloud"`
	FeelsLikeC       float64    `json:"feelslike_c"`
	FeelsLikeF       float64    `json:"feelslike_f"`
	WindChillC       float64    `json:"windchill_c"`
	WindChillF       float64    `json:"windchill_f"`
	HeatIndexC       float64    `json:"heatindex_c"`
	HeatIndexF       float64    `json:"heatindex_f"`
	DewPointC        float64    `json:"dewpoint_c"`
	DewPointF        float64    `json:"dewpoint_f"`
	VisKm            float64    `json:"vis_km"`
	VisMiles         float64    `json:"vis_miles"`
	UV               float64    `json:"uv"`
	GustMph          float64    `json:"gust_mph"`
	GustKph          float64    `json:"gust_kph"`
}

// WeatherSnapshot is the most recently retrieved conditions for one location.
// A snapshot is either complete (both parts set) or empty (both nil).
type WeatherSnapshot struct {
	Location *Location          `json:"location"`
	Current  *CurrentConditions `json:"current"`
}

// IsEmpty reports whether the snapshot carries no data at all
func (s *WeatherSnapshot) IsEmpty() bool {
	return s == nil || (s.Location == nil && s.Current == nil)
}

// IsComplete reports whether every part of the snapshot, including the nested
// condition, is present. Only complete snapshots may be cached.
func (s *WeatherSnapshot) IsComplete() bool {
	return s != nil && s.Location != nil && s.Current != nil && s.Current.Condition != nil
}
