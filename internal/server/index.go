package server

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Veridex</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; color: #222; }
textarea, input[type=url] { width: 100%; box-sizing: border-box; padding: 0.5rem; font-size: 1rem; }
textarea { height: 10rem; }
button { padding: 0.5rem 1.5rem; font-size: 1rem; cursor: pointer; }
#result { margin-top: 1.5rem; padding: 1rem; border-radius: 6px; display: none; }
#result.ok { display: block; background: #f0f7f0; border: 1px solid #9c9; }
#result.err { display: block; background: #fbf0f0; border: 1px solid #c99; }
.label-True { color: #1a7f1a; font-weight: bold; }
.label-Fake { color: #b3261e; font-weight: bold; }
.label-Unverifiable { color: #8a6d00; font-weight: bold; }
small { color: #666; }
</style>
</head>
<body>
<h1>Veridex</h1>
<p>Paste an article or a URL and get a fake-news verdict.</p>
<p><textarea id="text" placeholder="Paste article text here..."></textarea></p>
<p><input type="url" id="url" placeholder="...or enter an article URL"></p>
<p><button id="go">Analyze</button></p>
<div id="result"></div>
<script>
const result = document.getElementById('result');
document.getElementById('go').addEventListener('click', async () => {
  const text = document.getElementById('text').value.trim();
  const url = document.getElementById('url').value.trim();
  const body = url ? {url} : {text};
  result.className = '';
  result.textContent = 'Analyzing...';
  result.style.display = 'block';
  try {
    const resp = await fetch('/api/analyze', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body),
    });
    const data = await resp.json();
    if (!resp.ok) {
      result.className = 'err';
      result.textContent = data.error || ('request failed: ' + resp.status);
      return;
    }
    const v = data.verdict;
    result.className = 'ok';
    result.innerHTML =
      'Verdict: <span class="label-' + v.label + '">' + v.label + '</span><br>' +
      'Confidence: true ' + Math.round(v.confidence_true * 100) + '% / fake ' +
      Math.round(v.confidence_fake * 100) + '%' +
      (data.title ? '<br>Title: ' + data.title : '') +
      (data.source_tier ? '<br>Source tier: ' + data.source_tier : '') +
      (v.parsed ? '' : '<br><small>model response could not be parsed; verdict degraded</small>');
  } catch (e) {
    result.className = 'err';
    result.textContent = 'request failed: ' + e;
  }
});
</script>
</body>
</html>
`
