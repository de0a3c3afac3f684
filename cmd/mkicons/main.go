// mkicons generates the application icon set (PNGs, icon.ico,
// icon.icns) from the source logo, compositing it onto a rounded
// colored background. Run with no arguments during packaging.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Mavwarf/mkicons/internal/iconset"
	"github.com/Mavwarf/mkicons/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	args := os.Args[1:]
	logoPath := paths.DefaultLogo
	outDir := paths.DefaultIconsDir

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--logo", "-l":
			if i+1 < len(args) {
				logoPath = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --logo requires a file path\n")
				os.Exit(1)
			}
		case "--out", "-o":
			if i+1 < len(args) {
				outDir = args[i+1]
				i++
			} else {
				fmt.Fprintf(os.Stderr, "Error: --out requires a directory path\n")
				os.Exit(1)
			}
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) > 0 {
		switch filtered[0] {
		case "help", "-h", "--help":
			printUsage()
		case "version", "-V", "--version":
			printVersion()
		case "list", "--list":
			listTargets()
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", filtered[0])
			fmt.Fprintf(os.Stderr, "Run 'mkicons help' for usage.\n")
			os.Exit(1)
		}
		return
	}

	gen := iconset.Generator{Logo: logoPath, OutDir: outDir, Progress: os.Stdout}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nDone!")
}

func listTargets() {
	fmt.Println("PNG:")
	for _, t := range iconset.PNGTargets {
		fmt.Printf("  %-16s %dx%d\n", t.Name, t.Size, t.Size)
	}
	fmt.Printf("ICO:\n  %-16s", iconset.ICOName)
	for _, s := range iconset.ICOSizes {
		fmt.Printf(" %dx%d", s, s)
	}
	fmt.Printf("\nICNS:\n  %-16s derived from %dx%d\n", iconset.ICNSName, iconset.ICNSSize, iconset.ICNSSize)
}

func printVersion() {
	fmt.Printf("mkicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("mkicons %s - Generate the app icon set from the source logo\n", version)
	fmt.Println(`
Usage:
  mkicons [options]

Options:
  --logo, -l <path>   Source logo image (default: assets/logo.png)
  --out, -o <dir>     Output directory (default: src-tauri/icons)

Commands:
  list, --list        List all output files and sizes
  version, -V         Show version and build date
  help, -h, --help    Show this help message

Outputs:
  32x32.png 64x64.png 128x128.png 128x128@2x.png 512x512.png icon.png
  icon.ico (256, 64, 48, 32, 24, 16)
  icon.icns

Existing files are overwritten; the output directory is created if
missing.`)
}
