// Package schedule resolves which class of a weekly timetable is running now
// and which one starts next. Everything here is a pure function of its inputs:
// the entry set, a day name and the minutes elapsed since midnight.
package schedule
