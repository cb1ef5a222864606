package http

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>askdesk</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
textarea { width: 100%; min-height: 6rem; }
.loading { color: #666; }
.error { color: #b00020; }
.answer { line-height: 1.5; }
</style>
</head>
<body>
<h1>askdesk</h1>
<form method="post" action="/ask">
<textarea id="question" name="question" placeholder="Ask a question about web development...">{{.Question}}</textarea>
<button type="submit">Ask</button>
</form>
<div id="answer" data-kind="{{.Kind}}">{{.Answer}}</div>
</body>
</html>
`
