package handler

import "net/http"

// Minimal HTML error pages. Crawlers are the only audience, so these stay
// deliberately plain.
const notFoundPage = `<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>Page introuvable</title></head>
<body><h1>404</h1><p>Cette page n&#39;existe pas.</p></body>
</html>
`

const serverErrorPage = `<!DOCTYPE html>
<html lang="fr">
<head><meta charset="utf-8"><title>Erreur</title></head>
<body><h1>500</h1><p>Une erreur est survenue. Veuillez réessayer plus tard.</p></body>
</html>
`

func NotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(notFoundPage))
}

func ServerError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(serverErrorPage))
}
