package dashboard

// Static markdown blocks rendered on the dashboard pages.

const introMarkdown = `
This dashboard summarizes CitiBike demand patterns and highlights implications
for NYC's bike **supply and rebalancing** problem.

Use the sidebar pages to explore:
- Demand vs temperature (dual-axis)
- Most popular start stations
- Interactive map (HTML embed)
- Seasonality insight
- Final recommendations
`

const dailyInterpretation = `
**Interpretation**
- Trips generally rise as temperatures warm and fall as temperatures cool, indicating strong weather seasonality.
- Daily noise remains high even at similar temperatures, pointing to additional demand drivers (weekday/weekend, rain, holidays, events).
- Temperature is useful as a baseline forecasting feature for bike supply and rebalancing, but operational planning should also incorporate calendar and weather factors.
`

const stationsInterpretation = `
**Interpretation**
- Demand is concentrated: a small set of stations generates a large share of trips.
- These high-volume hubs are prime targets for proactive rebalancing to prevent stations from going empty.
- Tracking these stations over time helps identify predictable supply pressure points.
`

const mapInterpretation = `
**Interpretation**
- The map highlights where CitiBike activity concentrates (hotspots) and/or which flows dominate (depending on the chosen map).
- Spatial clustering reveals areas most likely to experience bike shortages or dock saturation.
- These patterns support a zone-based rebalancing strategy: prioritize high-impact corridors rather than reacting station-by-station.
`

const seasonalInterpretation = `
**Interpretation**
- Demand peaks in warmer seasons and falls in colder ones, reinforcing temperature as a major demand driver.
- Operational capacity and rebalancing effort should scale up in spring/summer and adjust downward in winter.
`

const recommendationsMarkdown = `
### Recommendations to reduce supply imbalance

1. **Prioritize top start-station hubs**
   - Monitor and proactively rebalance around the busiest stations, especially during commuting windows.
   - These hubs are recurring sources of station-level imbalance.

2. **Use weather-aware demand planning**
   - Temperature is a strong baseline demand signal.
   - Add day-of-week and precipitation to forecast demand spikes and pre-position bikes before shortages occur.

3. **Seasonal operations strategy**
   - Increase rebalancing capacity and bike availability in spring/summer when demand ramps up.
   - Shift focus to efficiency and maintenance planning in winter.

4. **Zone-based rebalancing from map patterns**
   - Use hotspot corridors and repeated flows to define rebalancing zones instead of reacting station-by-station.

### Next steps
- Add precipitation/wind, holidays, and member-vs-casual segmentation to better explain daily variability.
- Quantify "imbalance" directly if dock availability data is available (empty/full station events).
`
