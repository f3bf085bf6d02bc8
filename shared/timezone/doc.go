// Package timezone keeps the hotel's local clock.
//
// Booking dates are calendar days, so "today" must be evaluated in the
// hotel's timezone rather than in UTC:
//
//	timezone.Init(cfg.App.Timezone)
//	today := timezone.Today()
//	checkIn, err := timezone.ParseDate("2024-06-01")
//
// Use standard IANA names such as "UTC", "Europe/Moscow" or "Asia/Jakarta".
// Until Init is called every helper works in UTC.
package timezone
