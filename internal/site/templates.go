package site

// indexTemplate is the default listing page skeleton.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteTitle}}</title>
  <meta name="description" content="Selected projects and case studies.">
  <link rel="stylesheet" href="{{.BasePath}}static/style.css">
</head>
<body>
  <header class="site-header">
    <a class="brand" href="{{.BasePath}}index.html">{{.SiteTitle}}</a>
  </header>
  <main class="container">
    <section class="intro">
      <h1>Projects</h1>
      <p class="section-hint">Pick a project to open its case study.</p>
    </section>
    <div class="grid" data-projects-grid></div>
  </main>
</body>
</html>`

// projectTemplate is the default case-study page skeleton.
const projectTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Case Study | {{.SiteTitle}}</title>
  <meta name="description" content="Project case study.">
  <link rel="stylesheet" href="{{.BasePath}}static/style.css">
</head>
<body>
  <header class="site-header">
    <a class="brand" href="{{.BasePath}}index.html">{{.SiteTitle}}</a>
    <a class="back" href="{{.BasePath}}index.html">&larr; All projects</a>
  </header>
  <main class="container case">
    <section class="hero">
      <h1 data-p-name>Project</h1>
      <p class="subtitle" data-p-subtitle></p>
      <div class="meta" data-p-meta></div>
      <div class="links" data-p-links></div>
    </section>

    <section class="role-box">
      <p class="label">Role</p>
      <p data-p-role></p>
      <div class="team-row" data-p-team></div>
    </section>

    <section class="block" data-sec="overview">
      <h2>Overview</h2>
      <p data-p-overview></p>
    </section>

    <section class="block" data-sec="responsibilities">
      <h2>Responsibilities</h2>
      <ul data-p-resp></ul>
    </section>

    <section class="block" data-sec="tools">
      <h2>Tools</h2>
      <ul class="chips" data-p-tools></ul>
    </section>

    <section class="block" data-sec="challenges">
      <h2>Challenges</h2>
      <ul data-p-challenges></ul>
    </section>

    <section class="block" data-sec="solutions">
      <h2>Solutions</h2>
      <ul data-p-solutions></ul>
    </section>

    <section class="block" data-sec="results">
      <h2>Results</h2>
      <ul data-p-results></ul>
    </section>

    <section class="block" data-sec="timeline">
      <h2>Timeline</h2>
      <div class="timeline" data-p-timeline></div>
    </section>

    <section class="block" data-sec="gallery">
      <h2>Gallery</h2>
      <p class="section-hint" data-p-gallery-hint></p>
      <div class="gallery" data-gallery style="display:none">
        <div class="stage">
          <button class="nav prev" data-g-prev aria-label="Previous image">&lsaquo;</button>
          <img class="main" data-g-main src="" alt="">
          <button class="nav next" data-g-next aria-label="Next image">&rsaquo;</button>
        </div>
        <div class="thumbs" data-g-thumbs></div>
      </div>
    </section>
  </main>

  <div class="lightbox" id="lightbox" aria-hidden="true">
    <button class="close" id="lbClose" aria-label="Close preview">&times;</button>
    <img id="lbImg" src="" alt="">
  </div>

  <script src="{{.BasePath}}static/gallery.js"></script>
</body>
</html>`

// cssContent is the stylesheet shared by both pages.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: #0f1115;
  --bg-card: #171a21;
  --bg-card-hover: #1d212a;
  --text: #e6e8ee;
  --text-muted: #9aa3b2;
  --border: #262b36;
  --accent: #7aa2f7;
  --accent-soft: rgba(122,162,247,0.12);
  --radius: 14px;
  --shadow: 0 8px 24px rgba(0,0,0,0.35);
  --content-max-width: 1080px;
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

a { color: var(--accent); text-decoration: none; }

.container {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 32px 20px 80px;
}

.site-header {
  display: flex;
  justify-content: space-between;
  align-items: center;
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 20px;
}

.brand { font-weight: 700; color: var(--text); }
.back { color: var(--text-muted); }

.section-hint { color: var(--text-muted); font-size: 0.95rem; }

/* ============ Grid & Cards ============ */
.grid {
  display: grid;
  grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
  gap: 20px;
  margin-top: 24px;
}

.card {
  display: flex;
  flex-direction: column;
  gap: 12px;
  padding: 20px;
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: var(--radius);
  color: var(--text);
  transition: background 0.15s, transform 0.15s;
}

.card:hover { background: var(--bg-card-hover); transform: translateY(-2px); }
.card-top { display: flex; justify-content: space-between; align-items: flex-start; gap: 8px; }
.card-top h3 { font-size: 1.1rem; }
.card p { color: var(--text-muted); }
.card .links { margin-top: auto; }
.fake-link { color: var(--accent); font-weight: 600; }

.tag, .pill {
  display: inline-block;
  padding: 2px 10px;
  border-radius: 999px;
  background: var(--accent-soft);
  color: var(--accent);
  font-size: 0.8rem;
  white-space: nowrap;
}

/* ============ Case Study ============ */
.hero h1 { font-size: 2.2rem; }
.subtitle { color: var(--text-muted); font-size: 1.1rem; }
.meta { display: flex; flex-wrap: wrap; gap: 8px; margin: 16px 0; }
.links { display: flex; flex-wrap: wrap; gap: 10px; }

.btn {
  display: inline-block;
  padding: 8px 16px;
  border-radius: 10px;
  font-weight: 600;
}
.btn.primary { background: var(--accent); color: #0f1115; }
.btn.outline { border: 1px solid var(--accent); color: var(--accent); }

.role-box, .block {
  margin-top: 28px;
  padding: 20px;
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: var(--radius);
}
.role-box .label { color: var(--text-muted); font-size: 0.8rem; text-transform: uppercase; }
.team-row { margin-top: 8px; }
.block h2 { font-size: 1.2rem; margin-bottom: 10px; }
.block ul { padding-left: 20px; }
.chips { display: flex; flex-wrap: wrap; gap: 8px; list-style: none; padding-left: 0 !important; }
.chips li { padding: 2px 10px; border: 1px solid var(--border); border-radius: 999px; }

.timeline { display: grid; gap: 12px; }
.titem { border-left: 2px solid var(--accent); padding-left: 12px; }
.tlabel { font-weight: 600; }
.tdetail { color: var(--text-muted); }

/* ============ Gallery ============ */
.gallery { margin-top: 12px; }
.stage { position: relative; }
.stage .main {
  display: block;
  width: 100%;
  max-height: 520px;
  object-fit: contain;
  border-radius: var(--radius);
  background: #000;
  cursor: zoom-in;
}
.nav {
  position: absolute;
  top: 50%;
  transform: translateY(-50%);
  width: 40px;
  height: 40px;
  border: none;
  border-radius: 50%;
  background: rgba(0,0,0,0.55);
  color: #fff;
  font-size: 1.6rem;
  cursor: pointer;
}
.nav.prev { left: 10px; }
.nav.next { right: 10px; }
.thumbs { display: flex; gap: 8px; margin-top: 10px; overflow-x: auto; }
.thumb {
  width: 96px;
  height: 64px;
  object-fit: cover;
  border-radius: 8px;
  border: 2px solid transparent;
  opacity: 0.6;
  cursor: pointer;
}
.thumb.active { border-color: var(--accent); opacity: 1; }

/* ============ Lightbox ============ */
.lightbox {
  position: fixed;
  inset: 0;
  display: none;
  align-items: center;
  justify-content: center;
  background: rgba(0,0,0,0.85);
  z-index: 100;
}
.lightbox.open { display: flex; }
.lightbox img { max-width: 92vw; max-height: 88vh; border-radius: 8px; }
.lightbox .close {
  position: absolute;
  top: 16px;
  right: 20px;
  border: none;
  background: none;
  color: #fff;
  font-size: 2rem;
  cursor: pointer;
}

@media (max-width: 640px) {
  .hero h1 { font-size: 1.7rem; }
  .thumb { width: 72px; height: 48px; }
}
`

// jsContent is the gallery client. With a live session it forwards input to
// the server and applies the returned view operations; without one (static
// builds) it drives the carousel locally.
const jsContent = `(function() {
  "use strict";

  var body = document.body;

  // ===== Target lookup =====
  // "name" matches [data-name] or #name; "name=value" matches [data-name="value"].
  function find(target) {
    var eq = target.indexOf("=");
    if (eq >= 0) {
      var name = target.slice(0, eq);
      var value = target.slice(eq + 1);
      return document.querySelector("[data-" + name + "=\"" + value + "\"]");
    }
    return document.querySelector("[data-" + target + "], #" + target);
  }

  function build(node) {
    var el = document.createElement(node.tag);
    if (node.class) el.className = node.class;
    (node.attrs || []).forEach(function(a) { el.setAttribute(a.k, a.v); });
    if (node.text) el.textContent = node.text;
    (node.children || []).forEach(function(c) { el.appendChild(build(c)); });
    return el;
  }

  function apply(op) {
    var el = find(op.target);
    if (!el) return;
    switch (op.op) {
      case "text": el.textContent = op.value; break;
      case "visible": el.style.display = op.on ? "" : "none"; break;
      case "attr": el.setAttribute(op.key, op.value); break;
      case "class": el.classList.toggle(op.key, op.on); break;
      case "children":
        el.innerHTML = "";
        (op.children || []).forEach(function(c) { el.appendChild(build(c)); });
        break;
    }
  }

  var main = find("g-main");
  var thumbs = find("g-thumbs");
  var prev = find("g-prev");
  var next = find("g-next");
  var lightbox = find("lightbox");
  var lbClose = find("lbClose");
  var lbImg = find("lbImg");

  // ===== Input wiring =====
  function bind(bindings, send) {
    var has = {};
    (bindings || []).forEach(function(b) { has[b] = true; });

    if (has.thumbs && thumbs) {
      thumbs.addEventListener("click", function(e) {
        var t = e.target.closest("[data-g-thumb]");
        if (t) send({ type: "click", target: "g-thumb", index: parseInt(t.getAttribute("data-g-thumb"), 10) });
      });
    }
    if (has.prev && prev) prev.addEventListener("click", function() { send({ type: "click", target: "g-prev" }); });
    if (has.next && next) next.addEventListener("click", function() { send({ type: "click", target: "g-next" }); });
    if (has.main && main) main.addEventListener("click", function() { send({ type: "click", target: "g-main" }); });
    if (has["lightbox-close"] && lbClose) {
      lbClose.addEventListener("click", function(e) {
        e.stopPropagation();
        send({ type: "click", target: "lbClose" });
      });
    }
    if (has["lightbox-backdrop"] && lightbox) {
      lightbox.addEventListener("click", function(e) {
        if (e.target === lightbox) send({ type: "click", target: "lightbox" });
      });
    }
    if (has.keys) {
      document.addEventListener("keydown", function(e) {
        if (e.key === "Escape" || e.key === "ArrowLeft" || e.key === "ArrowRight") {
          send({ type: "key", key: e.key });
        }
      });
    }
  }

  // ===== Live session =====
  function connect(token) {
    var proto = location.protocol === "https:" ? "wss:" : "ws:";
    var ws = new WebSocket(proto + "//" + location.host + "/ws/gallery?session=" + encodeURIComponent(token));
    var bound = false;

    ws.addEventListener("message", function(msg) {
      var data;
      try { data = JSON.parse(msg.data); } catch (e) { return; }
      if (!bound && data.session) {
        bound = true;
        bind(data.bindings, function(ev) {
          if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(ev));
        });
        return;
      }
      (data.ops || []).forEach(apply);
    });
  }

  // ===== Local fallback =====
  function local() {
    var items = thumbs ? Array.prototype.slice.call(thumbs.querySelectorAll("[data-g-thumb]")) : [];
    if (!items.length || !main) return;
    var active = 0;
    var open = false;

    function select(i) {
      var n = items.length;
      active = ((i % n) + n) % n;
      main.setAttribute("src", items[active].getAttribute("src"));
      main.setAttribute("alt", items[active].getAttribute("data-alt") || main.getAttribute("alt"));
      items.forEach(function(t, j) { t.classList.toggle("active", j === active); });
      if (open && lbImg) lbImg.setAttribute("src", main.getAttribute("src"));
    }

    bind(["thumbs", "prev", "next", "main", "lightbox-close", "lightbox-backdrop", "keys"], function(ev) {
      if (ev.type === "key") {
        if (ev.key === "Escape") ev = { type: "click", target: "lbClose" };
        else if (ev.key === "ArrowLeft") return select(active - 1);
        else return select(active + 1);
      }
      switch (ev.target) {
        case "g-thumb": return select(ev.index);
        case "g-prev": return select(active - 1);
        case "g-next": return select(active + 1);
        case "g-main":
          if (!lightbox || !lbImg) return;
          open = true;
          lbImg.setAttribute("src", main.getAttribute("src"));
          lbImg.setAttribute("alt", main.getAttribute("alt"));
          lightbox.classList.add("open");
          lightbox.setAttribute("aria-hidden", "false");
          return;
        case "lbClose":
        case "lightbox":
          if (!lightbox || !lbImg) return;
          open = false;
          lightbox.classList.remove("open");
          lightbox.setAttribute("aria-hidden", "true");
          lbImg.setAttribute("src", "");
          return;
      }
    });
  }

  var token = body.getAttribute("data-gallery-session");
  if (token && window.WebSocket) {
    connect(token);
  } else {
    local();
  }
})();
`
