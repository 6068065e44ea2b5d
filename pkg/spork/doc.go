// Package spork reports CPU and memory usage for the calling process, the
// calling thread, and the caller's children, normalized across a
// configurable number of CPU cores.
//
// CPU usage is measured between polls: the first poll for a target
// establishes a baseline and reads 0, and each later poll reports the
// average load over the interval since the previous poll of the same target.
// Polls from different targets never interfere with each other, and neither
// do independent Client instances.
//
//	client, err := spork.New()
//	if err != nil {
//		// platform could not be detected
//	}
//
//	stats, err := client.Stats(spork.Process)
//	if err != nil {
//		// accounting read failed
//	}
//	fmt.Printf("cpu: %.1f%%, memory: %d bytes\n", stats.CPU, stats.Memory)
//
// Be careful polling the same target from multiple goroutines with one
// client: the measurement interval then becomes the delta since whichever
// goroutine polled last. Thread polls measure each OS thread individually
// and do not have this problem, provided each goroutine is pinned with
// runtime.LockOSThread.
package spork
