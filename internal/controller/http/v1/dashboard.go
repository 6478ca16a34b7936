package httpv1

// indexHTML is the dashboard page; it pulls /api/data every 10s.
const indexHTML = `<!doctype html>
<html lang="en" class="h-full">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>Log Exceptions Dashboard</title>
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4.4.1"></script>
  <script src="https://cdn.tailwindcss.com"></script>
  <style>
    :focus { outline: 3px solid #3B82F6; outline-offset: 2px; }
  </style>
</head>
<body class="min-h-screen bg-slate-50 text-slate-900">
  <div class="max-w-7xl mx-auto px-4 py-6">
    <header class="mb-6">
      <h1 class="text-2xl md:text-3xl font-bold">Exception Monitoring Dashboard</h1>
      <p class="text-slate-600">Real-time exception monitoring with interactive insights.</p>
    </header>

    <section class="mb-6 flex flex-col md:flex-row gap-3 md:items-center">
      <form class="flex flex-1 gap-2" onsubmit="event.preventDefault(); updateFileParam();">
        <input id="filePath" class="flex-1 rounded-xl border p-3 shadow-sm" type="text" placeholder="Path to analysis report (e.g., analysis_report_sample_spring_boot.md)" aria-label="Report file path" />
        <button class="rounded-2xl px-4 py-2 bg-blue-600 text-white shadow hover:bg-blue-700">Load</button>
      </form>
      <div class="text-xs text-slate-500">Auto-refresh: every 10s</div>
    </section>

    <section class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-4 mb-6">
      <div class="bg-white rounded-2xl p-4 shadow">
        <div class="text-sm text-slate-500">Total Exceptions</div>
        <div id="metricTotal" class="text-3xl font-bold">&mdash;</div>
      </div>
      <div class="bg-white rounded-2xl p-4 shadow">
        <div class="text-sm text-slate-500">Code Fixes Generated</div>
        <div id="metricFixes" class="text-3xl font-bold">&mdash;</div>
      </div>
      <div class="bg-white rounded-2xl p-4 shadow">
        <div class="text-sm text-slate-500">Most Common Type</div>
        <div id="metricCommon" class="text-3xl font-bold">&mdash;</div>
      </div>
      <div class="bg-white rounded-2xl p-4 shadow">
        <div class="text-sm text-slate-500">Last Updated</div>
        <div id="metricUpdated" class="text-3xl font-bold">&mdash;</div>
      </div>
    </section>

    <section class="grid grid-cols-1 lg:grid-cols-5 gap-6">
      <div class="lg:col-span-3 bg-white rounded-2xl p-4 shadow">
        <h2 class="font-semibold mb-2">Exception Types (Bar)</h2>
        <canvas id="typesBar" role="img" aria-label="Bar chart of exception types"></canvas>
      </div>
      <div class="lg:col-span-2 bg-white rounded-2xl p-4 shadow">
        <h2 class="font-semibold mb-2">Severity Distribution</h2>
        <canvas id="severityPie" role="img" aria-label="Pie chart of severity distribution"></canvas>
      </div>
      <div class="lg:col-span-3 bg-white rounded-2xl p-4 shadow">
        <h2 class="font-semibold mb-2">Timeline (Line)</h2>
        <canvas id="timelineLine" role="img" aria-label="Line chart of exceptions over time"></canvas>
      </div>
      <div class="lg:col-span-2 bg-white rounded-2xl p-4 shadow">
        <h2 class="font-semibold mb-2">Service Health (Heatmap)</h2>
        <canvas id="heatmap" role="img" aria-label="Heatmap of service health"></canvas>
      </div>
    </section>

    <section class="mt-6 bg-white rounded-2xl p-4 shadow">
      <h2 class="font-semibold mb-3">Exceptions (Details)</h2>
      <div id="exceptionList" class="space-y-2"></div>
    </section>

    <footer class="mt-8 text-xs text-slate-500">Accessible color keys:
      <span class="inline-flex items-center gap-1"><span class="inline-block w-3 h-3 rounded-sm bg-red-600"></span>Critical</span>,
      <span class="inline-flex items-center gap-1"><span class="inline-block w-3 h-3 rounded-sm bg-amber-500"></span>High</span>,
      <span class="inline-flex items-center gap-1"><span class="inline-block w-3 h-3 rounded-sm bg-emerald-500"></span>Medium</span>,
      <span class="inline-flex items-center gap-1"><span class="inline-block w-3 h-3 rounded-sm bg-blue-500"></span>Low</span>
    </footer>
  </div>

<script>
const SEVERITY_COLORS = {
  "Critical": "#DC2626",
  "High": "#F59E0B",
  "Medium": "#10B981",
  "Low": "#3B82F6",
};

let charts = { typesBar: null, severityPie: null, timelineLine: null, heatmap: null };

function getParam(name) {
  return new URLSearchParams(window.location.search).get(name);
}

function updateFileParam() {
  const p = document.getElementById('filePath').value.trim();
  if (!p) return;
  const url = new URL(window.location);
  url.searchParams.set('file', p);
  window.history.replaceState(null, '', url);
  fetchAndRender();
}

function fmtTime(ts) {
  const d = new Date(ts*1000);
  return d.toLocaleString();
}

async function fetchData() {
  const file = getParam('file');
  if (!file) return {error: "No file parameter"};
  const res = await fetch('/api/data?file=' + encodeURIComponent(file));
  return res.json();
}

function ensureChart(ctxId, cfg) {
  if (charts[ctxId]) charts[ctxId].destroy();
  const ctx = document.getElementById(ctxId);
  charts[ctxId] = new Chart(ctx, cfg);
}

function render(data) {
  document.getElementById('metricTotal').textContent = data.total_exceptions ?? '—';
  document.getElementById('metricFixes').textContent = data.code_fixes_generated ?? '—';
  const commonType = Object.entries(data.by_type || {}).sort((a,b)=>b[1]-a[1])[0];
  document.getElementById('metricCommon').textContent = commonType ? commonType[0] + ' (' + commonType[1] + ')' : '—';
  document.getElementById('metricUpdated').textContent = data.generated_at ? fmtTime(data.generated_at) : '—';

  const typeLabels = Object.keys(data.by_type || {});
  const typeValues = typeLabels.map(k => data.by_type[k]);
  ensureChart('typesBar', {
    type: 'bar',
    data: {
      labels: typeLabels,
      datasets: [{ label: 'Count', data: typeValues }]
    },
    options: {
      responsive: true,
      plugins: {
        legend: { display: false },
        tooltip: { mode: 'index', intersect: false }
      },
      scales: { x: { ticks: { autoSkip: false } }, y: { beginAtZero: true } }
    }
  });

  const sevLabels = ['Critical','High','Medium','Low'];
  const sevValues = sevLabels.map(k => (data.by_severity && data.by_severity[k]) || 0);
  const sevColors = sevLabels.map(k => SEVERITY_COLORS[k]);
  ensureChart('severityPie', {
    type: 'pie',
    data: {
      labels: sevLabels,
      datasets: [{ data: sevValues, backgroundColor: sevColors }]
    },
    options: {
      responsive: true,
      plugins: { legend: { position: 'bottom' } }
    }
  });

  ensureChart('timelineLine', {
    type: 'line',
    data: {
      labels: (data.timeline && data.timeline.labels) || [],
      datasets: [{
        label: 'Exceptions',
        data: (data.timeline && data.timeline.values) || [],
        fill: false,
        tension: 0.2
      }]
    },
    options: {
      responsive: true,
      plugins: { legend: { display: false } },
      scales: { y: { beginAtZero: true, precision: 0 } }
    }
  });

  const cols = (data.heatmap && data.heatmap.cols) || 1;
  const hmData = (data.heatmap && data.heatmap.data) || {};
  const colLabels = Array.from({length: cols}, (_,i)=>'T'+(i+1));
  const ds = Object.keys(SEVERITY_COLORS).map(sev => ({
    label: sev, stack: 'S',
    data: (hmData[sev] || Array(cols).fill(0)),
    backgroundColor: SEVERITY_COLORS[sev]
  }));
  ensureChart('heatmap', {
    type: 'bar',
    data: { labels: colLabels, datasets: ds },
    options: {
      responsive: true,
      plugins: {
        legend: { position: 'bottom' },
        tooltip: { mode: 'index', intersect: false }
      },
      scales: {
        x: { stacked: true },
        y: { stacked: true, beginAtZero: true, ticks: { precision: 0 } }
      }
    }
  });

  const list = document.getElementById('exceptionList');
  list.innerHTML = '';
  (data.exceptions || []).forEach(e => {
    const wrapper = document.createElement('details');
    wrapper.className = 'rounded-xl border p-3';
    const sevColor = SEVERITY_COLORS[e.severity] || '#64748B';
    const esc = s => s.replace(/[<>&]/g, c => ({'<':'&lt;','>':'&gt;','&':'&amp;'})[c]);
    wrapper.innerHTML =
      '<summary class="cursor-pointer flex flex-wrap items-center gap-2">' +
      '<span class="font-semibold">' + esc(e.type) + '</span>' +
      '<span class="text-xs px-2 py-0.5 rounded-full" style="background:' + sevColor + '20;color:' + sevColor + ';border:1px solid ' + sevColor + '40">' + e.severity + '</span>' +
      '<span class="text-slate-500 text-sm">#' + e.index + '</span>' +
      '<span class="text-slate-400 text-xs ml-auto">' + (e.timestamp_raw || 'No timestamp') + '</span>' +
      '</summary>' +
      '<div class="mt-2 grid gap-2 text-sm">' +
      '<div><span class="text-slate-500">Message:</span> ' + (e.message ? esc(e.message) : '—') + '</div>' +
      '<div><span class="text-slate-500">Location:</span> ' + (e.location ? esc(e.location) : '—') + '</div>' +
      (e.stack ? '<pre class="bg-slate-50 rounded p-2 overflow-x-auto text-[11px]">' + esc(e.stack) + '</pre>' : '') +
      '</div>';
    list.appendChild(wrapper);
  });
}

async function fetchAndRender() {
  const data = await fetchData();
  if (data.error) {
    alert(data.error);
    return;
  }
  render(data);
}

function init() {
  const file = getParam('file');
  if (file) document.getElementById('filePath').value = file;
  if (file) fetchAndRender();
  setInterval(() => {
    if (getParam('file')) fetchAndRender();
  }, 10000);
}

window.addEventListener('DOMContentLoaded', init);
</script>
</body>
</html>
`
