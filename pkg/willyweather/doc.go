// Package willyweather fetches and parses tide predictions from the
// WillyWeather tide pages. A successful fetch+parse yields the day's schedule
// of tide extrema with time, height, and whether each is high or low. All
// times are local to the location.
package willyweather
