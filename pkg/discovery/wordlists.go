package discovery

// Compiled-in probe candidates. Deliberately small: discovery is gated to
// one request per interval, so the wordlist size sets the wall-clock floor
// of a run.

// commonDirs are directory names worth probing on any origin.
var commonDirs = []string{
	"admin", "administrator", "login", "wp-admin", "wp-login", "api", "v1", "v2", "rest",
	"dashboard", "panel", "uploads", "images", "assets", "backup", "old", "dev", "test",
	"config", "docs", "includes", "scripts", "data", "logs", "private", "secure", "user",
	"shop", "blog", "search",
}

// commonFiles are filenames worth probing on any origin.
var commonFiles = []string{
	"robots.txt", "sitemap.xml", "favicon.ico", "humans.txt", "security.txt", "manifest.json",
	"index.html", "index.php", "login.php", "register.php", "admin.php", "config.php",
	"db.php", "readme.txt", "phpinfo.php", "backup.sql", "wp-config.php", ".env", "package.json",
}

// ProbeList returns the full candidate list, directories first, in the
// fixed order reports preserve.
func ProbeList() []string {
	out := make([]string, 0, len(commonDirs)+len(commonFiles))
	out = append(out, commonDirs...)
	out = append(out, commonFiles...)
	return out
}
