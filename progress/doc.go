// Package progress defines the typed events produced while parsing git output
// and the Handler interface that receives them.
//
// Every parsed line becomes one Event. Events are plain values and are never
// mutated after they are created:
//
//   - Progress carries numeric progress for a phase such as
//     "Receiving objects", including byte counts and rates when git reports them.
//   - Message carries a line of text with its kind (hint, warning, remote, ...).
//   - SubmoduleRegistered, SubmoduleCheckedOut, AmbiguousReference,
//     CheckoutConflict, MergeConflict and FileUpdate carry structured records.
//
// Callers usually switch on the concrete type:
//
//	handler := progress.HandlerFuncs{
//		Progress: func(e progress.Event) {
//			switch ev := e.(type) {
//			case progress.Progress:
//				fmt.Printf("%s %.0f%%\n", ev.Phase, ev.Completed*100)
//			case progress.Message:
//				fmt.Println(ev.Text)
//			}
//		},
//	}
package progress
