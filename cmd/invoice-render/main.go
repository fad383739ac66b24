// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the invoice-render CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/invoice-render/internal/render"
	"github.com/pdiddy/invoice-render/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; running it without a subcommand performs
// the render itself.
var rootCmd = &cobra.Command{
	Use:   "invoice-render",
	Short: "Render the first page of a PDF invoice to PNG and JPEG",
	Long: `invoice-render rasterizes the first page of a PDF invoice and writes it
as a PNG and/or JPEG image. Rasterization is delegated to MuPDF; the CLI
handles validation, output encoding, and render profiles.

Give the source PDF with --input and at least one of --png or --jpg. The
inspect subcommand reports page count and dimensions without rendering.`,
	RunE: runRender,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./invoice-render.yaml or ~/.config/invoice-render/config.yaml)")

	rootCmd.Flags().String("input", "", "path to the invoice PDF")
	rootCmd.Flags().String("png", "", "output PNG path (optional)")
	rootCmd.Flags().String("jpg", "", "output JPG path (optional)")
	rootCmd.Flags().Int("dpi", 0, "rendering DPI (default 200)")
	rootCmd.Flags().Int("quality", 0, "JPEG encoding quality, 1-100 (default 95)")
	rootCmd.Flags().String("profile", "", "load render parameters from a YAML profile")
	rootCmd.Flags().String("save-profile", "", "save the effective parameters to a YAML profile")
}

func initConfig() {
	// Load .env before viper reads the environment.
	_ = godotenv.Load(".env")

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("invoice-render")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "invoice-render"))
		}
	}

	viper.SetEnvPrefix("INVOICE_RENDER")
	viper.AutomaticEnv()
	viper.SetDefault("dpi", types.DefaultDPI)
	viper.SetDefault("quality", types.DefaultJPEGQuality)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	pngPath, _ := cmd.Flags().GetString("png")
	jpgPath, _ := cmd.Flags().GetString("jpg")
	dpi, _ := cmd.Flags().GetInt("dpi")
	quality, _ := cmd.Flags().GetInt("quality")

	req := render.Request{
		InputPath:   input,
		PNGPath:     pngPath,
		JPGPath:     jpgPath,
		DPI:         dpi,
		JPEGQuality: quality,
	}

	if profilePath, _ := cmd.Flags().GetString("profile"); profilePath != "" {
		p, err := render.ReadProfile(profilePath)
		if err != nil {
			return err
		}
		req = p.Apply(req)
	}

	cfg := types.RenderConfig{
		DPI:         viper.GetInt("dpi"),
		JPEGQuality: viper.GetInt("quality"),
	}
	if req.DPI == 0 {
		req.DPI = cfg.DPI
	}
	if req.JPEGQuality == 0 {
		req.JPEGQuality = cfg.JPEGQuality
	}

	rast, err := render.NewRasterizer()
	if err != nil {
		return err
	}
	defer rast.Close()

	if err := render.Run(rast, req, os.Stdout); err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save-profile"); savePath != "" {
		if err := render.WriteProfile(savePath, req); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Saved render profile to", savePath)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
