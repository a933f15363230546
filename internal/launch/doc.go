// Package launch starts desktop applications, optionally handing them a file
// or URI to open.
//
// Applications are identified by their desktop ID; the matching .desktop
// entry is looked up in the XDG application directories and its Exec line is
// expanded according to the Desktop Entry specification's field codes. The
// launched process is detached from the daemon: it survives a daemon restart
// and its exit status is not collected.
package launch
