package gallery

// Stylesheet is the inline CSS of the gallery page.
const Stylesheet = `
:root { font-family: system-ui, sans-serif; color: #1f2328; }
body { margin: 0; background: #f6f8fa; }
.gallery { max-width: 960px; margin: 0 auto; padding: 32px 24px; }
.gallery section { background: #fff; border: 1px solid #d0d7de; border-radius: 8px; padding: 16px 20px; margin-bottom: 20px; position: relative; }
.gallery h2 { font-size: 16px; margin: 0 0 12px; }

.toast-manager-container { position: fixed; top: 16px; right: 16px; display: flex; flex-direction: column; gap: 8px; z-index: 1000; }
.toast { display: flex; align-items: center; gap: 8px; min-width: 240px; padding: 10px 12px; border-radius: 6px; background: #fff; box-shadow: 0 4px 12px rgba(0,0,0,.12); transition: opacity .3s, transform .3s; }
.toast:not(.is-visible) { transform: translateY(-4px); }
.toast--success { border-left: 4px solid #1a7f37; }
.toast--error { border-left: 4px solid #cf222e; }
.toast--warning { border-left: 4px solid #9a6700; }
.toast--info { border-left: 4px solid #0969da; }
.toast__message { flex: 1; font-size: 14px; }
.toast__close-button { border: 0; background: none; cursor: pointer; }

.dialog { --dynamic-dialog-width: 520px; width: var(--dynamic-dialog-width); border: 1px solid #d0d7de; border-radius: 8px; padding: 0; }
.dialog-header { display: flex; justify-content: space-between; align-items: center; padding: 12px 16px; border-bottom: 1px solid #d0d7de; }
.dialog-title { font-weight: 600; }
.dialog-close-button { border: 0; background: none; cursor: pointer; font-size: 18px; }
.dialog-body, .dialog-footer { padding: 12px 16px; }

.popup-content { background: #fff; border: 1px solid #d0d7de; border-radius: 6px; padding: 12px; box-shadow: 0 8px 24px rgba(0,0,0,.12); }

.internal-textarea { width: 360px; resize: none; padding: 8px; font: 13px/16px monospace; border: 1px solid #d0d7de; border-radius: 6px; box-sizing: border-box; }
`
