// package tasks contains the notification producer: the engine launchd
// invokes once a day to run month-rollover maintenance, find upcoming
// payments, and post the financial summary.
package tasks
