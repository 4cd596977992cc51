// Package service is the single write path into the settlement engine.
//
// Every command is sequenced, appended to the command log, applied to the
// engine and its events handed to the outbox, all under one lock, so the
// log order is the apply order. Recovery replays the log on top of the
// newest snapshot.
package service
