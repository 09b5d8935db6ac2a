// Package storage manages the output directory that downloads are written to.
//
// Files are written through a PendingFile: the body goes to "<name>.part"
// and is renamed onto "<name>" only on Commit. A download that fails or is
// interrupted therefore never leaves a file under its final name, which
// keeps Exists a reliable "already downloaded" check across runs.
//
// Usage:
//
//	m := storage.NewManager("images")
//	if err := m.EnsureDir(); err != nil {
//	    return err
//	}
//	if !m.Exists("32.jpg") {
//	    f, err := storage.CreatePending(m.Path("32.jpg"))
//	    ...
//	    if _, err := io.Copy(f, body); err != nil {
//	        f.Abort()
//	        return err
//	    }
//	    return f.Commit()
//	}
package storage
