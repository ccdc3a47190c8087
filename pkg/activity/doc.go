// Package activity implements the inactivity watchdog that ties user
// interaction to the session lifecycle.
//
// A Monitor combines two mechanisms:
//
//   - Event-driven refresh. HandleEvent is called for every click, keypress,
//     mousemove or scroll. While the monitor runs, a valid session is
//     refreshed and an invalid one is terminated on the spot.
//   - Periodic sweep. Every Interval (30s by default) the session is checked.
//     If it is no longer valid the Notifier shows the expiry notice, the
//     monitor waits Grace (2s by default), terminates the session and asks
//     the Notifier to redirect to the login page.
//
// Only one sweep goroutine is live at a time: Start cancels the previous one
// before scheduling a new one. Stop cancels the sweep and turns HandleEvent
// into a no-op without waiting for the goroutine, so it is safe to call from a
// session termination hook, including one triggered by the sweep itself.
//
// # Usage
//
//	mon, err := activity.New(sessions,
//		activity.WithNotifier(ui),
//		activity.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	sessions.OnTerminate(func(context.Context) { mon.Stop() })
//
//	mon.Start(ctx)
//	defer mon.Stop()
//
//	mon.HandleEvent(ctx, activity.EventClick)
package activity
