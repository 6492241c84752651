// Package catalog holds the toolkit-independent core of the book catalog
// window: the table model and its sync back to the store, the entry form,
// search, deletion and CSV export.
//
// A front end (the web UI in internal/http, the commands in internal/cli)
// owns a single Catalog and forwards user events to it:
//
//	cat := catalog.New(books.NewRepository(db.DB), notifier, log)
//	if err := cat.Refresh(); err != nil {
//		return err
//	}
//	cat.SubmitForm("Animal Farm", "George Orwell", "1945")
//	cat.Search("farm")
//	cat.SelectRow(0)
//	cat.DeleteSelected(catalog.Answer(true))
//
// Every Catalog method runs under one lock, so events are handled one at a
// time in arrival order, the way a GUI event loop would deliver them.
package catalog
